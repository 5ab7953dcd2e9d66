package responses

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// create response payload; answers are keyed "question_<index>"
type CreateResponseRequest struct {
	AppointmentID   uuid.UUID         `json:"appointment_id" validate:"required"`
	UserID          uuid.UUID         `json:"user_id" validate:"required"`
	QuestionnaireID uuid.UUID         `json:"questionnaire_id" validate:"required"`
	Answers         datatypes.JSONMap `json:"answers" validate:"required"`
}

// update response payload; the answer set is replaced as a whole
type UpdateResponseRequest struct {
	Answers datatypes.JSONMap `json:"answers" validate:"required"`
}
