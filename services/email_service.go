package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	texttemplate "text/template"
	"time"

	"github.com/jstrehler/portfolio-backend/config"
	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

// emailSender is the slice of the Resend client the service uses, narrow so
// tests can substitute a mock.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService forwards accepted feedback submissions to the site owner via
// Resend, with the submitter set as reply-to.
type EmailService struct {
	config  *config.EmailConfig
	emails  emailSender
	metrics *EmailMetrics

	htmlTmpl *template.Template
	textTmpl *texttemplate.Template
}

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress,
		"recipient", logger.MaskEmail(cfg.RecipientAddress),
		"api_key", logger.MaskSensitiveString(cfg.ResendAPIKey, 4, 2))

	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_email_send_duration_seconds",
			Help:    "Time taken to send feedback emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:   cfg,
		emails:   client.Emails,
		metrics:  metrics,
		htmlTmpl: template.Must(template.New("feedback_html").Parse(feedbackEmailHTMLTemplate)),
		textTmpl: texttemplate.Must(texttemplate.New("feedback_text").Parse(feedbackEmailTextTemplate)),
	}
}

// SendFeedbackEmail renders and sends the notification for one accepted
// submission. Missing recipient or API key is a configuration fault.
func (s *EmailService) SendFeedbackEmail(ctx context.Context, submission types.FeedbackEmailData) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	if s.config.RecipientAddress == "" {
		s.metrics.errorCount.Inc()
		return fmt.Errorf("feedback recipient address is not configured")
	}
	if s.config.ResendAPIKey == "" {
		s.metrics.errorCount.Inc()
		return fmt.Errorf("resend API key is not configured")
	}

	var htmlContent bytes.Buffer
	if err := s.htmlTmpl.Execute(&htmlContent, submission); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to render HTML email body", "error", err)
		return fmt.Errorf("failed to render email: %w", err)
	}

	var textContent bytes.Buffer
	if err := s.textTmpl.Execute(&textContent, submission); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to render text email body", "error", err)
		return fmt.Errorf("failed to render email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{s.config.RecipientAddress},
		ReplyTo: submission.Email,
		Subject: fmt.Sprintf("Portfolio Feedback from %s", submission.Name),
		Html:    htmlContent.String(),
		Text:    textContent.String(),
	}

	if _, err := s.emails.SendWithContext(ctx, params); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send feedback email",
			"error", err,
			"reply_to", logger.MaskEmail(submission.Email))
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Feedback email sent",
		"reply_to", logger.MaskEmail(submission.Email),
		"collaboration", submission.InterestedInCollaboration)

	return nil
}

// Template constants. html/template escapes all submitted values.
const feedbackEmailHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Portfolio Feedback</title>
</head>
<body style="margin: 0; padding: 0; font-family: sans-serif; background-color: #f5f5f5;">
    <table width="100%" cellpadding="0" cellspacing="0" style="background-color: #f5f5f5; padding: 40px 20px;">
        <tr>
            <td align="center">
                <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #06b6d4 0%, #3b82f6 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="margin: 0; color: #ffffff; font-size: 28px;">New Portfolio Feedback</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <div style="margin-bottom: 30px; padding: 20px; background-color: #f8fafc; border-left: 4px solid #06b6d4; border-radius: 4px;">
                                <p style="margin: 0 0 10px 0; font-size: 14px; color: #64748b; text-transform: uppercase;">From</p>
                                <p style="margin: 0 0 8px 0; font-size: 18px; color: #0f172a; font-weight: 600;">{{.Name}}</p>
                                <p style="margin: 0; font-size: 16px;"><a href="mailto:{{.Email}}" style="color: #3b82f6; text-decoration: none;">{{.Email}}</a></p>
                            </div>
                            <div style="margin-bottom: 30px;">
                                <p style="margin: 0 0 12px 0; font-size: 14px; color: #64748b; text-transform: uppercase;">Message</p>
                                <div style="padding: 20px; border: 1px solid #e2e8f0; border-radius: 8px;">
                                    <p style="margin: 0; font-size: 16px; color: #334155; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</p>
                                </div>
                            </div>
                            {{if .InterestedInCollaboration}}
                            <div style="margin-bottom: 30px; padding: 16px 20px; background-color: #ecfeff; border: 1px solid #06b6d4; border-radius: 8px;">
                                <p style="margin: 0; font-size: 14px; color: #0e7490; font-weight: 600;">Interested in collaboration opportunities</p>
                            </div>
                            {{end}}
                            <div style="padding-top: 20px; border-top: 1px solid #e2e8f0;">
                                <p style="margin: 0 0 6px 0; font-size: 13px; color: #94a3b8;"><strong>Received:</strong> {{.Timestamp}}</p>
                                <p style="margin: 0; font-size: 13px; color: #94a3b8;"><strong>Client:</strong> {{.ClientID}}</p>
                            </div>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 20px 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="margin: 0; font-size: 13px; color: #64748b;">This message was sent via your portfolio website contact form</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`

const feedbackEmailTextTemplate = `NEW PORTFOLIO FEEDBACK
==================================================

FROM: {{.Name}}
EMAIL: {{.Email}}
{{if .InterestedInCollaboration}}INTERESTED IN COLLABORATION: Yes
{{end}}
MESSAGE:
--------------------------------------------------
{{.Message}}
--------------------------------------------------

RECEIVED: {{.Timestamp}}
CLIENT: {{.ClientID}}

---
This message was sent via your portfolio website contact form.
Reply directly to this email to respond to {{.Name}}.`
