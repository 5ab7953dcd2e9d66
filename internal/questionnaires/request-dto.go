package questionnaires

// create questionnaire payload
type CreateQuestionnaireRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=255"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions" validate:"required,min=1"`
}

// update questionnaire payload, partial; replacing questions invalidates the
// positional mapping of existing answer sets, so callers should only do it
// before responses exist
type UpdateQuestionnaireRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string    `json:"description,omitempty"`
	Questions   []Question `json:"questions,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}
