package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/shopkori/assistant-platform/internal/model"
	"github.com/shopkori/assistant-platform/pkg/logger"
	"github.com/shopkori/assistant-platform/pkg/metrics"
)

const (
	// StreamName is the name of the chat transcript stream.
	StreamName = "CHAT"

	// SubjectPrefix is the prefix for all chat subjects.
	SubjectPrefix = "chat"
)

// Publisher emits transcript events. Implementations must be safe to call
// from the session controller's submit path; failures are absorbed, not
// returned to the caller's user.
type Publisher interface {
	MessageAppended(ctx context.Context, sessionID string, msg model.Message)
	SessionEvent(ctx context.Context, ev model.ChatEvent)
}

// messageSubject returns the subject for an appended message.
func messageSubject(sessionID string, sender model.Sender) string {
	return fmt.Sprintf("%s.%s.msg.%s", SubjectPrefix, sessionID, sender)
}

// eventSubject returns the subject for a session lifecycle event.
func eventSubject(sessionID string, eventType model.EventType) string {
	return fmt.Sprintf("%s.%s.event.%s", SubjectPrefix, sessionID, eventType)
}

// JetStreamPublisher publishes transcript events to NATS JetStream.
type JetStreamPublisher struct {
	client *Client
	logger *logger.Logger
}

// NewJetStreamPublisher creates a publisher on an established client.
func NewJetStreamPublisher(client *Client, log *logger.Logger) *JetStreamPublisher {
	return &JetStreamPublisher{client: client, logger: log}
}

// EnsureStream ensures the chat transcript stream exists.
func (p *JetStreamPublisher) EnsureStream(ctx context.Context) error {
	js := p.client.JetStream()

	_, err := js.Stream(ctx, StreamName)
	if err == nil {
		return nil
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      30 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Compression: jetstream.S2Compression,
		Description: "Chat widget transcripts and session events",
	})
	if err != nil {
		return fmt.Errorf("create stream: %w", err)
	}
	return nil
}

// MessageAppended publishes a transcript message. Errors are logged and
// counted, never propagated.
func (p *JetStreamPublisher) MessageAppended(ctx context.Context, sessionID string, msg model.Message) {
	p.publish(ctx, messageSubject(sessionID, msg.Sender), msg, "message")
}

// SessionEvent publishes a session lifecycle event.
func (p *JetStreamPublisher) SessionEvent(ctx context.Context, ev model.ChatEvent) {
	p.publish(ctx, eventSubject(ev.SessionID, ev.Type), ev, string(ev.Type))
}

func (p *JetStreamPublisher) publish(ctx context.Context, subject string, v any, kind string) {
	data, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("marshal transcript event", zap.Error(err))
		metrics.EventsPublished.WithLabelValues(kind, "error").Inc()
		return
	}

	if _, err := p.client.JetStream().Publish(ctx, subject, data); err != nil {
		p.logger.Warn("publish transcript event",
			zap.String("subject", subject),
			zap.Error(err),
		)
		metrics.EventsPublished.WithLabelValues(kind, "error").Inc()
		return
	}
	metrics.EventsPublished.WithLabelValues(kind, "ok").Inc()
}

// NoopPublisher discards all events. Used when NATS is not configured.
type NoopPublisher struct{}

func (NoopPublisher) MessageAppended(context.Context, string, model.Message) {}

func (NoopPublisher) SessionEvent(context.Context, model.ChatEvent) {}
