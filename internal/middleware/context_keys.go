package middleware

import "github.com/gin-gonic/gin"

// callerIDKey stores the authenticated calling service (JWT subject).
const callerIDKey = contextKey("callerID")

// GetCallerIDFromContext retrieves the authenticated caller from the Gin context
// or, failing that, from the request context.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(callerIDKey)); exists {
		callerID, ok := v.(string)
		return callerID, ok
	}
	if v, ok := c.Request.Context().Value(callerIDKey).(string); ok {
		return v, true
	}
	return "", false
}
