// services/digest_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"orderdesk-backend/logger"
	"orderdesk-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// MessageSender delivers a text message and returns the provider message id.
type MessageSender interface {
	Send(to, body string) (string, error)
}

// TwilioSender sends SMS, or WhatsApp when the recipient has a "whatsapp:" prefix.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSid, authToken, from string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *TwilioSender) Send(to, body string) (string, error) {
	from := s.from
	if strings.HasPrefix(to, "whatsapp:") && !strings.HasPrefix(from, "whatsapp:") {
		from = "whatsapp:" + from
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

// DigestService reports the order backlog to the administrator on a schedule.
type DigestService struct {
	lifecycle *OrderLifecycle
	sender    MessageSender
	to        string
}

// NewDigestService builds the digest job. A nil sender only logs the digest.
func NewDigestService(lifecycle *OrderLifecycle, sender MessageSender, to string) *DigestService {
	return &DigestService{lifecycle: lifecycle, sender: sender, to: to}
}

// FormatDigest renders a summary as a single message.
func FormatDigest(s *Summary) string {
	return fmt.Sprintf("Orders today: %d | Pending: %d | In progress: %d | Completed: %d | Total: %d",
		s.CreatedToday,
		s.ByStatus[models.StatusPending],
		s.ByStatus[models.StatusInProgress],
		s.ByStatus[models.StatusCompleted],
		s.Total)
}

// Run builds and delivers one digest.
func (d *DigestService) Run(ctx context.Context) (string, error) {
	summary, err := d.lifecycle.Summary(ctx)
	if err != nil {
		return "", err
	}
	body := FormatDigest(summary)
	logger.Info("order digest", zap.String("digest", body))

	if d.sender == nil || d.to == "" {
		return body, nil
	}
	sid, err := d.sender.Send(d.to, body)
	if err != nil {
		return body, fmt.Errorf("send digest: %w", err)
	}
	logger.Info("order digest sent", zap.String("to", d.to), zap.String("sid", sid))
	return body, nil
}

// Start schedules Run with a standard five-field cron spec.
func (d *DigestService) Start(schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := d.Run(ctx); err != nil {
			logger.Error("order digest failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule digest %q: %w", schedule, err)
	}
	c.Start()
	logger.Info("digest scheduler started", zap.String("schedule", schedule))
	return c, nil
}
