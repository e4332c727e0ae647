package helpers

import (
	"testing"
	"time"
)

func TestTruncateToDate(t *testing.T) {
	pacific := time.FixedZone("UTC-8", -8*60*60)
	kolkata := time.FixedZone("UTC+5:30", 5*60*60+30*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"utc morning",
			time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC),
			time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"utc midnight unchanged",
			time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"western evening crosses into next utc day",
			time.Date(2026, time.March, 1, 20, 0, 0, 0, pacific),
			time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			"eastern early morning falls back to previous utc day",
			time.Date(2026, time.March, 1, 3, 0, 0, 0, kolkata),
			time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateToDate(tt.in)
			if !got.Equal(tt.want) || got.Location() != time.UTC {
				t.Errorf("TruncateToDate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v, want 90m", got)
	}
	if got := ParseDuration("", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(empty) = %v, want fallback", got)
	}
	if got := ParseDuration("soon", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(malformed) = %v, want fallback", got)
	}
}
