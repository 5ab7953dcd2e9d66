package responses

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionnaireResponse is one answer set, submitted once per
// (appointment, questionnaire) pair. Answers map positional keys
// ("question_<i>") to values shaped by the referenced question's type; the
// whole set is replaced on update and re-validated each time.
type QuestionnaireResponse struct {
	ID              uuid.UUID         `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	AppointmentID   uuid.UUID         `json:"appointment_id" gorm:"type:uuid;not null;uniqueIndex:idx_response_appointment_questionnaire"`
	UserID          uuid.UUID         `json:"user_id" gorm:"type:uuid;not null"`
	QuestionnaireID uuid.UUID         `json:"questionnaire_id" gorm:"type:uuid;not null;uniqueIndex:idx_response_appointment_questionnaire"`
	Answers         datatypes.JSONMap `json:"answers" gorm:"type:jsonb;not null"`
	SubmittedAt     time.Time         `json:"submitted_at"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
