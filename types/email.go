package types

// FeedbackEmailData is the payload handed to the email service when a
// validated submission is forwarded to the site owner.
type FeedbackEmailData struct {
	Name                      string
	Email                     string
	Message                   string
	InterestedInCollaboration bool
	Timestamp                 string // RFC 3339
	ClientID                  string
}
