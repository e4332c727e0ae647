package identifier

import "testing"

func TestDepartmentCode(t *testing.T) {
	tests := []struct {
		department string
		want       string
	}{
		{"Computer Science", "CS"},
		{"Information Technology", "IT"},
		{"Electronics and Communication", "EAC"},
		{"Mechanical", "M"},
		{"computer science", "CS"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := DepartmentCode(tt.department); got != tt.want {
			t.Errorf("DepartmentCode(%q) = %q, want %q", tt.department, got, tt.want)
		}
	}
}

func TestStudentID(t *testing.T) {
	tests := []struct {
		department string
		year       int
		sequence   int
		want       string
	}{
		{"Computer Science", 2026, 3, "26CS003"},
		{"Computer Science", 2026, 120, "26CS120"},
		{"Information Technology", 2031, 1, "31IT001"},
		{"Mechanical", 2000, 7, "00M007"},
	}

	for _, tt := range tests {
		if got := StudentID(tt.department, tt.year, tt.sequence); got != tt.want {
			t.Errorf("StudentID(%q, %d, %d) = %q, want %q", tt.department, tt.year, tt.sequence, got, tt.want)
		}
	}
}

func TestFacultyID(t *testing.T) {
	if got := FacultyID("Computer Science", 2026, 2); got != "F26CS002" {
		t.Errorf("FacultyID = %q, want %q", got, "F26CS002")
	}
}

func TestBuckets(t *testing.T) {
	if got := StudentBucket("Computer Science", 1); got != "student:CS:1" {
		t.Errorf("StudentBucket = %q, want %q", got, "student:CS:1")
	}
	if got := FacultyBucket("Computer Science", 2026); got != "faculty:CS:2026" {
		t.Errorf("FacultyBucket = %q, want %q", got, "faculty:CS:2026")
	}
}
