package assessments

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserAssessment stores the public intake form a prospective client fills
// in before their first appointment. Answers are free-form JSON keyed by
// the intake form's section fields. Payment card fields submitted by the
// legacy form are never persisted.
type UserAssessment struct {
	ID          uuid.UUID         `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID      uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	Answers     datatypes.JSONMap `json:"answers" gorm:"type:jsonb;not null"`
	SubmittedAt time.Time         `json:"submitted_at" gorm:"not null"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
