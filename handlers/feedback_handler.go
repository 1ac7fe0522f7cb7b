package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	apperrors "github.com/jstrehler/portfolio-backend/errors"
	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/middleware"
	"github.com/jstrehler/portfolio-backend/types"
	"github.com/gin-gonic/gin"
)

// EmailSender forwards an accepted submission to the site owner. It is nil
// when email delivery is disabled, in which case submissions are only logged.
type EmailSender interface {
	SendFeedbackEmail(ctx context.Context, data types.FeedbackEmailData) error
}

// FeedbackHandler handles contact-form submissions. Rate limiting runs as
// route middleware before this handler; the pipeline here is parse, validate,
// record, optionally forward, acknowledge.
type FeedbackHandler struct {
	emailService EmailSender
}

// NewFeedbackHandler creates a new FeedbackHandler. emailService may be nil.
func NewFeedbackHandler(emailService EmailSender) *FeedbackHandler {
	return &FeedbackHandler{emailService: emailService}
}

// SubmitFeedback godoc
// @Summary      Submit contact-form feedback
// @Description  Validates and records a feedback submission from the contact page
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      types.FeedbackCreate  true  "Feedback payload"
// @Success      200   {object}  types.SuccessResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      429   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req types.FeedbackCreate
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		// A type mismatch (e.g. a non-boolean collaboration flag) is a
		// schema violation the client can correct; anything else means the
		// body was not parseable at all.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			_ = c.Error(apperrors.ValidationFailed([]types.FieldError{
				{Field: field, Message: "Invalid type for field " + field},
			}))
			return
		}
		_ = c.Error(apperrors.MalformedRequest(err))
		return
	}

	submission, fieldErrors := req.Validate()
	if fieldErrors != nil {
		_ = c.Error(apperrors.ValidationFailed(fieldErrors))
		return
	}

	submission.ReceivedAt = time.Now().UTC()
	submission.ClientID = middleware.ClientIdentifier(c)

	// The accepted submission is recorded as a log line; there is no
	// persistence beyond this.
	logger.GetLogger().Infow("Feedback received",
		"name", submission.Name,
		"email", submission.Email,
		"message", submission.Message,
		"interested_in_collaboration", submission.InterestedInCollaboration,
		"timestamp", submission.ReceivedAt.Format(time.RFC3339),
		"client_id", submission.ClientID,
	)

	if h.emailService != nil {
		emailData := types.FeedbackEmailData{
			Name:                      submission.Name,
			Email:                     submission.Email,
			Message:                   submission.Message,
			InterestedInCollaboration: submission.InterestedInCollaboration,
			Timestamp:                 submission.ReceivedAt.Format(time.RFC3339),
			ClientID:                  submission.ClientID,
		}
		if err := h.emailService.SendFeedbackEmail(c.Request.Context(), emailData); err != nil {
			_ = c.Error(apperrors.NewDeliveryError(err))
			return
		}
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
