package logger

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// sensitiveHeaders are never written to logs.
var sensitiveHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"Set-Cookie":    true,
	"X-Api-Key":     true,
}

// LogHTTPError logs an error that occurred while handling an HTTP request,
// enriched with request metadata from the gin context.
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	log := GetLogger()

	fields := []interface{}{
		"status_code", statusCode,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"client_ip", c.ClientIP(),
		"headers", filterSensitiveHeaders(c.Request.Header),
	}
	if requestID := c.GetString("request_id"); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if err != nil {
		fields = append(fields, "error", err.Error())
	}

	if statusCode >= http.StatusInternalServerError {
		log.Errorw(message, fields...)
	} else {
		log.Warnw(message, fields...)
	}
}

func filterSensitiveHeaders(headers http.Header) map[string]string {
	filtered := make(map[string]string, len(headers))
	for name, values := range headers {
		if sensitiveHeaders[name] {
			filtered[name] = "[REDACTED]"
			continue
		}
		if len(values) > 0 {
			filtered[name] = values[0]
		}
	}
	return filtered
}
