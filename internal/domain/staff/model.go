package staff

import (
	"time"

	"github.com/google/uuid"
)

// Role is the fixed staff role enumeration.
type Role string

const (
	RoleRadiologist Role = "radiologist"
	RoleDoctor      Role = "doctor"
	RoleAdmin       Role = "admin"
)

// ValidRoles lists every accepted role value.
var ValidRoles = map[Role]bool{
	RoleRadiologist: true,
	RoleDoctor:      true,
	RoleAdmin:       true,
}

// Staff maps to the staff table. There is no credential field; knowing a
// staff member's id or name is sufficient to log in as them.
type Staff struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Address        string    `db:"address" json:"address"`
	Role           Role      `db:"role" json:"role"`
	Specialization string    `db:"specialization" json:"specialization"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// CreateStaffInput carries the fields accepted when registering staff.
type CreateStaffInput struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Role           Role   `json:"role"`
	Specialization string `json:"specialization"`
}
