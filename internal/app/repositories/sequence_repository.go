package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SequenceRepository allocates identifier sequence numbers from per-bucket
// atomic counters. A bucket names one (role, department, year) group, e.g.
// "student:CS:1". The single upsert-returning statement makes allocation
// safe under concurrent creations in the same bucket.
type SequenceRepository struct {
	db *pgxpool.Pool
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *pgxpool.Pool) *SequenceRepository {
	return &SequenceRepository{
		db: db,
	}
}

// Next returns the next sequence number for the given bucket, starting at 1.
func (r *SequenceRepository) Next(ctx context.Context, bucket string) (int, error) {
	query := `
		INSERT INTO id_sequences (bucket, last_value)
		VALUES ($1, 1)
		ON CONFLICT (bucket) DO UPDATE SET last_value = id_sequences.last_value + 1
		RETURNING last_value
	`

	var value int
	if err := r.db.QueryRow(ctx, query, bucket).Scan(&value); err != nil {
		return 0, fmt.Errorf("error allocating sequence for bucket %s: %w", bucket, err)
	}

	return value, nil
}
