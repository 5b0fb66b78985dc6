// Package session owns chat widget session state: the message transcript,
// open/closed visibility, unread accounting, and the owned assistant.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopkori/assistant-platform/internal/assistant"
	"github.com/shopkori/assistant-platform/internal/events"
	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/model"
	"github.com/shopkori/assistant-platform/pkg/logger"
	"github.com/shopkori/assistant-platform/pkg/metrics"
)

// AssistantFactory constructs a fresh assistant for a locale/identity
// pair. The controller calls it on construction and on locale change.
type AssistantFactory func(loc locale.Locale, user *model.User) *assistant.Assistant

// Controller is the stateful owner of one chat widget session.
//
// Unread invariant: the counter increments only when an assistant reply is
// appended via Submit while the widget is closed, and resets to zero the
// moment the widget opens. Seeded greetings (initial, clear, locale
// change) never touch the counter.
type Controller struct {
	id              string
	user            *model.User
	newAssistant    AssistantFactory
	publisher       events.Publisher
	logger          *logger.Logger
	responseTimeout time.Duration

	mu           sync.Mutex
	loc          locale.Locale
	open         bool
	composing    bool
	unread       int
	messages     []model.Message
	assistant    *assistant.Assistant
	lastActivity time.Time
}

// NewController creates a session with a seeded greeting message.
func NewController(
	id string,
	user *model.User,
	loc locale.Locale,
	factory AssistantFactory,
	publisher events.Publisher,
	responseTimeout time.Duration,
	log *logger.Logger,
) *Controller {
	c := &Controller{
		id:              id,
		user:            user,
		newAssistant:    factory,
		publisher:       publisher,
		logger:          log.WithSession(id, userID(user)),
		responseTimeout: responseTimeout,
		loc:             loc,
		assistant:       factory(loc, user),
		lastActivity:    time.Now(),
	}
	c.seedGreeting(context.Background())
	return c
}

// ID returns the opaque session identifier.
func (c *Controller) ID() string {
	return c.id
}

// Submit appends the user's text, synthesizes a reply, and appends it.
// Empty text and submits racing an in-flight composition are rejected
// with no state change. Synthesis failures of any kind surface as a
// localized technical-difficulty reply, never as an error.
func (c *Controller) Submit(ctx context.Context, text, currentPage string) (model.Message, model.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Message{}, model.Message{}, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.composing {
		c.mu.Unlock()
		return model.Message{}, model.Message{}, ErrBusy
	}
	userMsg := c.append(ctx, model.SenderUser, trimmed)
	c.composing = true
	asst := c.assistant
	loc := c.loc
	c.mu.Unlock()

	reply := c.compose(ctx, asst, trimmed, currentPage, loc)

	c.mu.Lock()
	replyMsg := c.append(ctx, model.SenderAssistant, reply)
	c.composing = false
	if !c.open {
		c.unread++
	}
	c.lastActivity = time.Now()
	c.mu.Unlock()

	return userMsg, replyMsg, nil
}

// compose runs the assistant under a deadline and a panic guard. Any
// escape hatch ends in the localized technical-difficulty template.
func (c *Controller) compose(ctx context.Context, asst *assistant.Assistant, text, currentPage string, loc locale.Locale) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("reply synthesis panicked", zap.Any("panic", r))
			reply = locale.Render(loc, locale.KeyTechnicalDifficulty, nil)
		}
	}()

	cctx, cancel := context.WithTimeout(ctx, c.responseTimeout)
	defer cancel()

	return asst.GenerateResponse(cctx, text, assistant.RequestContext{
		CurrentPage: currentPage,
		SessionID:   c.id,
		Timestamp:   time.Now(),
	})
}

// Toggle flips widget visibility. Opening pins unread back to zero.
func (c *Controller) Toggle() model.ToggleResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open = !c.open
	if c.open {
		c.unread = 0
	}
	c.lastActivity = time.Now()
	return model.ToggleResponse{Open: c.open, Unread: c.unread}
}

// Clear discards the transcript and re-seeds a single greeting. The
// re-seeded greeting does not bump the unread counter even while closed;
// the user just asked for the reset.
func (c *Controller) Clear(ctx context.Context) {
	c.mu.Lock()
	c.messages = nil
	c.seedGreetingLocked(ctx)
	c.lastActivity = time.Now()
	c.mu.Unlock()

	c.publisher.SessionEvent(ctx, c.event(model.EventTypeSessionCleared, ""))
}

// SetLocale switches the active locale, replaces the owned assistant
// (forcing a fresh snapshot on next use), and re-seeds the greeting.
func (c *Controller) SetLocale(ctx context.Context, raw string) error {
	loc, err := locale.Parse(raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.loc = loc
	c.assistant = c.newAssistant(loc, c.user)
	c.messages = nil
	c.seedGreetingLocked(ctx)
	c.lastActivity = time.Now()
	c.mu.Unlock()

	c.publisher.SessionEvent(ctx, c.event(model.EventTypeLocaleChanged, string(loc)))
	return nil
}

// State returns a point-in-time snapshot of the session.
func (c *Controller) State() model.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := make([]model.Message, len(c.messages))
	copy(msgs, c.messages)

	return model.SessionState{
		ID:        c.id,
		Locale:    string(c.loc),
		Open:      c.open,
		Composing: c.composing,
		Unread:    c.unread,
		Messages:  msgs,
	}
}

// LastActivity reports when the session was last touched.
func (c *Controller) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActivity
}

func (c *Controller) seedGreeting(ctx context.Context) {
	c.mu.Lock()
	c.seedGreetingLocked(ctx)
	c.mu.Unlock()
}

// seedGreetingLocked appends the locale- and identity-aware welcome
// message. Callers hold the mutex. No unread accounting happens here.
func (c *Controller) seedGreetingLocked(ctx context.Context) {
	key := locale.KeyWelcomeGuest
	params := map[string]string{}
	if c.user != nil && c.user.Name != "" {
		key = locale.KeyWelcomeUser
		params["name"] = c.user.Name
	}
	c.append(ctx, model.SenderAssistant, locale.Render(c.loc, key, params))
}

// append creates and stores a message. Callers hold the mutex.
func (c *Controller) append(ctx context.Context, sender model.Sender, text string) model.Message {
	msg := model.Message{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Text:      text,
		Sender:    sender,
		Kind:      model.KindText,
		CreatedAt: time.Now(),
	}
	c.messages = append(c.messages, msg)
	metrics.MessagesTotal.WithLabelValues(string(sender)).Inc()
	c.publisher.MessageAppended(ctx, c.id, msg)
	return msg
}

func (c *Controller) event(t model.EventType, reason string) model.ChatEvent {
	return model.ChatEvent{
		ID:        uuid.Must(uuid.NewV7()).String(),
		SessionID: c.id,
		Type:      t,
		Locale:    string(c.loc),
		Reason:    reason,
		CreatedAt: time.Now(),
	}
}

func userID(u *model.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
