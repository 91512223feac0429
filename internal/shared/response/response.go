package response

import (
	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/shared/pagination"
)

// The wire contract is deliberately small:
//   success (single):  the entity itself
//   success (list):    {"data": [...], "pagination": {...}}
//   success (action):  {"message": "..."}
//   failure:           {"error": "...", "details": <string|array|object>}

// JSON writes a single entity response.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// List writes a paginated collection response.
func List(c *gin.Context, data interface{}, meta pagination.Meta) {
	c.JSON(200, gin.H{
		"data":       data,
		"pagination": meta,
	})
}

// Message writes an action confirmation.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error writes a flat error envelope.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorWithDetails writes an error envelope carrying structured details.
// Details may be a string, an array, or an object; clients flatten it.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
