package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/corebank/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// anonymousCaller is the distinct id used when service auth is disabled.
const anonymousCaller = "anonymous"

func distinctID(c *gin.Context) string {
	if callerID, ok := GetCallerIDFromContext(c); ok && callerID != "" {
		return callerID
	}
	return anonymousCaller
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog.
// Route parameters are not forwarded since they carry card numbers.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// "/card/:cardNumber" -> "card_:cardNumber"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		posthogClient.Enqueue(distinctID(c), eventName, map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		})
	}
}

// PosthogEvent is a helper to manually send custom events from handlers when needed
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["route"] = c.FullPath()

	posthogClient.Enqueue(distinctID(c), eventName, properties)
}
