package middleware

import (
	"fmt"
	"net/http"

	apperrors "github.com/jstrehler/portfolio-backend/errors"
	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the API's
// wire contract. Every failure path produces one of the fixed response
// shapes; nothing propagates uncaught and internal detail stays in the logs.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if appError, ok := err.(*apperrors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			c.JSON(statusCode, types.ErrorResponse{
				Error:   appError.Message,
				Details: appError.Fields,
			})
			return
		}

		// Anything that is not an AppError is unexpected: log it with full
		// detail and return the generic message only.
		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: apperrors.MsgInternalError,
		})
	}
}
