package models

import "testing"

func scoredAssignment(score, maxScore float64) Assignment {
	return Assignment{Score: &score, MaxScore: &maxScore, Status: AssignmentGraded}
}

func scoredExam(score, maxScore float64) Exam {
	return Exam{Score: &score, MaxScore: &maxScore}
}

func TestCalculateFinalGrade(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   LetterGrade
	}{
		{"total 95 is A", []float64{50, 45}, "A"},
		{"total 90 boundary is A", []float64{90}, "A"},
		{"total 85 is B", []float64{40, 45}, "B"},
		{"total 73 is C", []float64{73}, "C"},
		{"total 65 is D", []float64{65}, "D"},
		{"total 40 is F", []float64{40}, "F"},
		{"no scores is F", nil, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Enrollment
			for i, s := range tt.scores {
				if i%2 == 0 {
					e.Assignments = append(e.Assignments, scoredAssignment(s, 100))
				} else {
					e.Exams = append(e.Exams, scoredExam(s, 100))
				}
			}
			if got := e.CalculateFinalGrade(); got != tt.want {
				t.Errorf("CalculateFinalGrade() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalculateFinalGradeIgnoresUnscored(t *testing.T) {
	e := Enrollment{
		Assignments: []Assignment{
			scoredAssignment(60, 100),
			{Status: AssignmentNotSubmitted}, // no score yet, counts as 0
		},
	}
	if got := e.CalculateFinalGrade(); got != "D" {
		t.Errorf("CalculateFinalGrade() = %q, want %q", got, "D")
	}
}

func TestCurrentGradePercentage(t *testing.T) {
	e := Enrollment{
		Assignments: []Assignment{scoredAssignment(18, 20)},
		Exams:       []Exam{scoredExam(55, 80)},
	}
	// (18+55)/(20+80) = 73%
	if got := e.CurrentGradePercentage(); got != 73 {
		t.Errorf("CurrentGradePercentage() = %d, want 73", got)
	}
}

func TestCurrentGradePercentageSkipsPartialItems(t *testing.T) {
	score := 10.0
	e := Enrollment{
		Assignments: []Assignment{
			scoredAssignment(40, 50),
			{Score: &score}, // no max score, excluded
		},
	}
	if got := e.CurrentGradePercentage(); got != 80 {
		t.Errorf("CurrentGradePercentage() = %d, want 80", got)
	}
}

func TestCurrentGradePercentageEmpty(t *testing.T) {
	var e Enrollment
	if got := e.CurrentGradePercentage(); got != 0 {
		t.Errorf("CurrentGradePercentage() = %d, want 0", got)
	}
}

func TestAttendancePercentage(t *testing.T) {
	e := Enrollment{
		Attendance: []AttendanceRecord{
			{Status: AttendancePresent},
			{Status: AttendanceAbsent},
			{Status: AttendanceLate},
			{Status: AttendanceExcused},
		},
	}
	// present + late = 2 of 4
	if got := e.AttendancePercentage(); got != 50 {
		t.Errorf("AttendancePercentage() = %d, want 50", got)
	}
}

func TestAttendancePercentageEmpty(t *testing.T) {
	var e Enrollment
	if got := e.AttendancePercentage(); got != 0 {
		t.Errorf("AttendancePercentage() = %d, want 0", got)
	}
}

func TestEnrollmentValidate(t *testing.T) {
	valid := Enrollment{StudentID: 1, CourseID: 2, Status: StatusEnrolled}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	badStatus := Enrollment{StudentID: 1, CourseID: 2, Status: "withdrawing"}
	if err := badStatus.Validate(); err == nil {
		t.Error("Validate() accepted unknown status")
	}

	badGrade := LetterGrade("E")
	withBadGrade := Enrollment{StudentID: 1, CourseID: 2, Status: StatusCompleted, Grade: &badGrade}
	if err := withBadGrade.Validate(); err == nil {
		t.Error("Validate() accepted unknown grade")
	}
}

func TestLetterGradeValid(t *testing.T) {
	for _, g := range LetterGrades {
		if !g.Valid() {
			t.Errorf("LetterGrade(%q).Valid() = false", g)
		}
	}
	if LetterGrade("E").Valid() {
		t.Error(`LetterGrade("E").Valid() = true`)
	}
}
