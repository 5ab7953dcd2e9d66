package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// ValidationFailed reports an itemized 400 from the questionnaire validator
// or a DTO binding failure.
func ValidationFailed(c *gin.Context, message string, errs []string) {
	RespondJSON(c, "error", http.StatusBadRequest, message, nil, errs)
}
