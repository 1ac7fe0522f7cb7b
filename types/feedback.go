package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation limits for feedback submissions.
const (
	MaxNameLength    = 100
	MinMessageLength = 10
	MaxMessageLength = 2000
)

// emailPattern is the standard loose email-syntax check: something before the
// @, something after it, and a dot-separated suffix, none containing spaces.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes a single violated validation rule, keyed by the field
// it applies to so clients can render per-field errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FeedbackCreate is the request body for POST /api/feedback. Pointer fields
// distinguish absent keys from zero values so missing-field violations can be
// reported precisely.
type FeedbackCreate struct {
	Name                      *string `json:"name"`
	Email                     *string `json:"email"`
	Message                   *string `json:"message"`
	InterestedInCollaboration *bool   `json:"interestedInCollaboration"`
}

// FeedbackSubmission is a fully validated submission. It is ephemeral: logged,
// optionally emailed, never persisted.
type FeedbackSubmission struct {
	Name                      string    `json:"name"`
	Email                     string    `json:"email"`
	Message                   string    `json:"message"`
	InterestedInCollaboration bool      `json:"interestedInCollaboration"`
	ReceivedAt                time.Time `json:"receivedAt"`
	ClientID                  string    `json:"clientId"`
}

// Validate applies every field rule independently and reports all violations
// together rather than short-circuiting on the first. A submission is either
// fully valid or rejected in its entirety.
func (r *FeedbackCreate) Validate() (*FeedbackSubmission, []FieldError) {
	var fieldErrors []FieldError

	var name string
	if r.Name == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "name", Message: "Name is required"})
	} else {
		name = strings.TrimSpace(*r.Name)
		switch {
		case name == "":
			fieldErrors = append(fieldErrors, FieldError{Field: "name", Message: "Name is required"})
		case len(name) > MaxNameLength:
			fieldErrors = append(fieldErrors, FieldError{
				Field:   "name",
				Message: fmt.Sprintf("Name must be at most %d characters", MaxNameLength),
			})
		}
	}

	var email string
	if r.Email == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "email", Message: "Email is required"})
	} else {
		email = strings.TrimSpace(*r.Email)
		if !emailPattern.MatchString(email) {
			fieldErrors = append(fieldErrors, FieldError{Field: "email", Message: "Invalid email address"})
		}
	}

	var message string
	if r.Message == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "message", Message: "Message is required"})
	} else {
		message = strings.TrimSpace(*r.Message)
		switch {
		case len(message) < MinMessageLength:
			fieldErrors = append(fieldErrors, FieldError{
				Field:   "message",
				Message: fmt.Sprintf("Message must be at least %d characters", MinMessageLength),
			})
		case len(message) > MaxMessageLength:
			fieldErrors = append(fieldErrors, FieldError{
				Field:   "message",
				Message: fmt.Sprintf("Message must be at most %d characters", MaxMessageLength),
			})
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &FeedbackSubmission{
		Name:                      name,
		Email:                     email,
		Message:                   message,
		InterestedInCollaboration: r.InterestedInCollaboration != nil && *r.InterestedInCollaboration,
	}, nil
}
