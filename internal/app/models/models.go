package models

// Role defines the caller role passed into authorization-sensitive operations.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// Principal identifies the caller of an operation: the linked account and
// its role. Controllers build it from the verified bearer token.
type Principal struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the caller has the admin role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// Department is the fixed set of departments. The string values are part of
// the stored data contract and must not change.
type Department string

const (
	DeptComputerScience          Department = "Computer Science"
	DeptInformationTechnology    Department = "Information Technology"
	DeptElectronicsCommunication Department = "Electronics and Communication"
	DeptElectricalElectronics    Department = "Electrical and Electronics"
	DeptMechanical               Department = "Mechanical"
	DeptCivil                    Department = "Civil"
	DeptBiotechnology            Department = "Biotechnology"
	DeptAeronautical             Department = "Aeronautical"
	DeptAutomobile               Department = "Automobile"
	DeptMechatronics             Department = "Mechatronics"
)

// Departments lists every valid department value.
var Departments = []Department{
	DeptComputerScience,
	DeptInformationTechnology,
	DeptElectronicsCommunication,
	DeptElectricalElectronics,
	DeptMechanical,
	DeptCivil,
	DeptBiotechnology,
	DeptAeronautical,
	DeptAutomobile,
	DeptMechatronics,
}

// Valid reports whether d is a known department.
func (d Department) Valid() bool {
	for _, dept := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// Gender values carried from the stored data contract.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is a known gender value.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// BloodGroup values carried from the stored data contract.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

// ValidBloodGroup reports whether s is a known blood group.
func ValidBloodGroup(s string) bool {
	for _, bg := range BloodGroups {
		if s == bg {
			return true
		}
	}
	return false
}

// Address holds the postal address fields shared by students and faculty.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}
