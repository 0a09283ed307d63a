package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// analyticsPathsToSkip contains paths that should never be tracked.
var analyticsPathsToSkip = map[string]bool{
	"/health": true,
}

// EventSink receives analytics events. Implemented by utils.AnalyticsClient.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID, event string, properties map[string]any)
}

// AnalyticsMiddleware creates a Gin middleware handler that captures one
// event per successfully handled, authenticated request. The event name is
// derived from the matched route so parameterized requests aggregate under
// one event.
func AnalyticsMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() || analyticsPathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/convert" -> "api_v1_convert"; empty for unmatched routes.
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		sink.Enqueue(userID, eventName, props)
	}
}
