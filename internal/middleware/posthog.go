package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/travel_request_app/internal/utils"
	"github.com/gin-gonic/gin"
)

var untrackedPaths = map[string]bool{
	"/health": true,
}

// PosthogMiddleware enqueues an event for every successful authenticated request.
// The event name is derived from the route template, e.g.
// "/api/v1/manager/requests/:id/approve" becomes "manager_requests_id_approve".
func PosthogMiddleware(analytics *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if analytics == nil || !analytics.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		eventName := routeEventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if principal, ok := GetPrincipalFromContext(c); ok {
			props["role"] = string(principal.Role)
		}
		if id := c.Param("id"); id != "" {
			props["resource_id"] = id
		}

		analytics.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event from a handler, e.g. a lifecycle transition.
func PosthogEvent(c *gin.Context, analytics *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if analytics == nil || !analytics.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	if principal, ok := GetPrincipalFromContext(c); ok {
		properties["role"] = string(principal.Role)
	}
	analytics.Enqueue(userID, eventName, properties)
}

func routeEventName(fullPath string) string {
	name := strings.TrimPrefix(fullPath, "/api/v1/")
	name = strings.TrimPrefix(name, "/")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, "/", "_")
}
