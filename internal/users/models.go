package users

import (
	"time"

	"github.com/google/uuid"

	"praxis/internal/roles"
)

// User is a practice member: an administrator, a therapist, or a client.
// The password column holds a bcrypt hash and is never serialized.
type User struct {
	ID        uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Username  string     `json:"username" gorm:"uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"`
	RoleID    uuid.UUID  `json:"role_id" gorm:"type:uuid;not null"`
	Role      roles.Role `json:"role" gorm:"foreignKey:RoleID"`
	FirstName string     `json:"first_name" gorm:"not null"`
	LastName  string     `json:"last_name" gorm:"not null"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty" gorm:"type:text"`
	Message   string     `json:"message,omitempty" gorm:"type:text"` // optional intake note
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
