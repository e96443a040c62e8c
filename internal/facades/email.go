package facades

//go:generate mockgen -source=email.go -destination=email_mock.go -package=facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// ErrWriterNotConfigured is returned when no Kafka writer was supplied.
var ErrWriterNotConfigured = errors.New("kafka writer not configured")

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>OTP Verification</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 480px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 24px;">
        <h1 style="color: #333333;">Verification Code</h1>
        <p>Your {{.Purpose}} code is:</p>
        <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">{{.Code}}</p>
        <p>This code will expire in {{.Minutes}} minutes. Do not share this code with anyone.</p>
    </div>
</body>
</html>`))

// EmailKafkaFacade renders one-time code emails and publishes them to Kafka
// for the mailer service to deliver.
type EmailKafkaFacade struct {
	writer KafkaWriter
	from   string
	ttl    time.Duration
	now    func() time.Time
}

// NewEmailKafkaFacade creates a facade publishing through writer.
// ttl is only used to tell the recipient how long the code stays valid.
func NewEmailKafkaFacade(writer KafkaWriter, from string, ttl time.Duration) *EmailKafkaFacade {
	return &EmailKafkaFacade{
		writer: writer,
		from:   from,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Send renders the code email for purpose and publishes it keyed by recipient.
func (f *EmailKafkaFacade) Send(ctx context.Context, recipient string, purpose models.CodePurpose, code string) error {
	if f.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping email", "to", recipient, "purpose", purpose)
		return ErrWriterNotConfigured
	}

	var body bytes.Buffer
	err := otpTemplate.Execute(&body, struct {
		Purpose string
		Code    string
		Minutes int
	}{purpose.Title(), code, int(f.ttl.Minutes())})
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	msg := models.EmailMessage{
		MessageID: uuid.New().String(),
		From:      f.from,
		To:        recipient,
		Purpose:   string(purpose),
		Subject:   fmt.Sprintf("Your %s Verification Code", purpose.Title()),
		HTML:      body.String(),
		Timestamp: f.now().Unix(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("Failed to marshal email for Kafka", "message_id", msg.MessageID, "error", err)
		return err
	}

	if err := f.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipient),
		Value: data,
	}); err != nil {
		logger.Log.Errorw("Failed to publish email to Kafka", "message_id", msg.MessageID, "error", err)
		return err
	}

	logger.Log.Infow("Email published to Kafka", "message_id", msg.MessageID, "purpose", purpose)
	return nil
}
