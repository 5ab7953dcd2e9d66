package questionnaires

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionType is the closed set of supported question kinds. Validation
// switches over this type exhaustively, so adding a kind without teaching
// the validator about it is a compile-visible change.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionDropdown       QuestionType = "dropdown"
	QuestionCheckbox       QuestionType = "checkbox"
	QuestionScale          QuestionType = "scale"
	QuestionText           QuestionType = "text"
)

// Question is one entry in a questionnaire's ordered question list. Options
// apply to choice-style questions, Min/Max to scale questions.
type Question struct {
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
	Min      *float64     `json:"min,omitempty"`
	Max      *float64     `json:"max,omitempty"`
}

// Questionnaire is an ordered sequence of question definitions, stored as a
// JSONB column. Answer sets reference questions by position, so the list
// should be treated as immutable once responses exist.
type Questionnaire struct {
	ID          uuid.UUID                      `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Title       string                         `json:"title" gorm:"not null"`
	Description string                         `json:"description"`
	Questions   datatypes.JSONSlice[Question]  `json:"questions" gorm:"type:jsonb;not null"`
	CreatedBy   uuid.UUID                      `json:"created_by" gorm:"type:uuid;not null"`
	IsActive    bool                           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time                      `json:"created_at"`
	UpdatedAt   time.Time                      `json:"updated_at"`
}
