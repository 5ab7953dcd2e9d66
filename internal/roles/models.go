package roles

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Role is the coarse permission group assigned to every user. Each user has
// exactly one role at any time.
type Role struct {
	ID          uuid.UUID         `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name        string            `json:"name" gorm:"uniqueIndex;not null"`
	Description string            `json:"description"`
	Permissions datatypes.JSONMap `json:"permissions,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Built-in role names seeded at bootstrap
const (
	RoleAdmin     = "Admin"
	RoleTherapist = "Therapist"
	RoleClient    = "Client"
)

func IsBuiltinRole(name string) bool {
	switch name {
	case RoleAdmin, RoleTherapist, RoleClient:
		return true
	default:
		return false
	}
}
