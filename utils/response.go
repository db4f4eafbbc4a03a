// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes a failure envelope.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}
