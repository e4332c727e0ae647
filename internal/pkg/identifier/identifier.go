// Package identifier derives the human-readable identifiers assigned to
// students and faculty members. The sequence number itself is allocated by
// the record store's atomic counter; this package only formats the result.
package identifier

import (
	"fmt"
	"strings"
	"unicode"
)

// facultyPrefix marks faculty identifiers apart from student ones.
const facultyPrefix = "F"

// DepartmentCode builds a department code from the uppercase first letter of
// each word in the department name. A malformed department name (no words)
// yields an empty code rather than an error.
func DepartmentCode(department string) string {
	var b strings.Builder
	for _, word := range strings.Fields(department) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// StudentID formats a student identifier as <YY><DEPTCODE><NNN>, where YY is
// the last two digits of year and NNN is the zero-padded sequence number.
func StudentID(department string, year int, sequence int) string {
	return fmt.Sprintf("%02d%s%03d", year%100, DepartmentCode(department), sequence)
}

// FacultyID formats a faculty identifier as F<YY><DEPTCODE><NNN>, where YY is
// the last two digits of the joining year.
func FacultyID(department string, joinYear int, sequence int) string {
	return facultyPrefix + fmt.Sprintf("%02d%s%03d", joinYear%100, DepartmentCode(department), sequence)
}

// StudentBucket names the sequence counter bucket for a (department, year)
// pair, e.g. "student:CS:1".
func StudentBucket(department string, year int) string {
	return fmt.Sprintf("student:%s:%d", DepartmentCode(department), year)
}

// FacultyBucket names the sequence counter bucket for a (department, joinYear)
// pair, e.g. "faculty:CS:2026".
func FacultyBucket(department string, joinYear int) string {
	return fmt.Sprintf("faculty:%s:%d", DepartmentCode(department), joinYear)
}
