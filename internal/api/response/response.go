package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as-is with the given status code.
func JSON(c *gin.Context, code int, payload any) {
	c.JSON(code, payload)
}

// Message writes a {"message": ...} body with the given status code.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// ErrorResponse writes a {"message": ...} error body with the given status code.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// InternalError writes a generic 500 body. Internal detail never reaches the
// client; it belongs in the logs.
func InternalError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
