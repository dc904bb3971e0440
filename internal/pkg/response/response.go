package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Partial reports an operation that stored bytes but could not finish
// every follow-up step (for example a metadata link failure after the
// file is already durable). Distinct from Error so clients can tell a
// half-done upload from a rejected one.
func Partial(c *gin.Context, statusCode int, code string, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"partial": true,
		"data":    data,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
