package domain

import "time"

// Branch is the engineering branch a course belongs to. The set is fixed;
// anything outside it is a validation error at the boundary.
type Branch string

const (
	BranchComputerScience Branch = "cse"
	BranchElectronics     Branch = "ece"
	BranchElectrical      Branch = "eee"
	BranchMechanical      Branch = "mech"
	BranchCivil           Branch = "civil"
)

// Branches lists every valid branch.
var Branches = []Branch{
	BranchComputerScience,
	BranchElectronics,
	BranchElectrical,
	BranchMechanical,
	BranchCivil,
}

// Valid reports whether b is one of the fixed branches.
func (b Branch) Valid() bool {
	for _, known := range Branches {
		if b == known {
			return true
		}
	}
	return false
}

// Course is a catalog entry. Users reference courses from their bookmark set
// by ID; they never own course content.
type Course struct {
	ID          string
	Title       string
	Branch      Branch
	Description string
	Topics      []string

	// SyllabusKey is the object storage key of the uploaded syllabus
	// document, empty when none has been uploaded.
	SyllabusKey string

	// PriceCents is the optional price. Nil means not priced.
	PriceCents *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
