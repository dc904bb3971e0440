package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request in key=value form and recovers
// from handler panics with a JSON 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf("request_panic method=%s path=%s client_ip=%s error=%q stack=%s",
					c.Request.Method, c.Request.URL.Path, c.ClientIP(), err.Error(), string(debug.Stack()))

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				c.Abort()
				return
			}

			status := c.Writer.Status()
			line := fmt.Sprintf("request status=%d method=%s path=%s client_ip=%s latency=%s",
				status, c.Request.Method, c.Request.URL.Path, c.ClientIP(), time.Since(start))
			for _, err := range c.Errors {
				line += fmt.Sprintf(" error=%q", err.Error())
			}
			log.Print(line)
		}()

		c.Next()
	}
}
