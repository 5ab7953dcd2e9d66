package assessments

type IntakeRequest struct {
	FirstName string                 `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string                 `json:"last_name" binding:"required,min=1,max=100"`
	Email     string                 `json:"email" binding:"required,email"`
	Phone     string                 `json:"phone" binding:"omitempty,max=50"`
	Address   string                 `json:"address" binding:"omitempty,max=500"`
	Message   string                 `json:"message" binding:"omitempty,max=2000"`
	Answers   map[string]interface{} `json:"answers" binding:"required"`
}
