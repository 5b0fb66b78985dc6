package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopkori/assistant-platform/internal/assistant"
	"github.com/shopkori/assistant-platform/internal/events"
	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/model"
	"github.com/shopkori/assistant-platform/pkg/logger"
)

type stubFetcher struct {
	products []model.Product
	orders   []model.Order
}

func (s *stubFetcher) Products(ctx context.Context) ([]model.Product, error) {
	return s.products, nil
}

func (s *stubFetcher) Orders(ctx context.Context, token string) ([]model.Order, error) {
	return s.orders, nil
}

func newTestController(user *model.User, loc locale.Locale) *Controller {
	fetcher := &stubFetcher{}
	factory := func(l locale.Locale, u *model.User) *assistant.Assistant {
		return assistant.New(l, u, fetcher, logger.NewNop())
	}
	return NewController("0191d1c0-0000-7000-8000-000000000001", user, loc, factory,
		events.NoopPublisher{}, time.Second, logger.NewNop())
}

func TestNewControllerSeedsGreeting(t *testing.T) {
	c := newTestController(nil, locale.English)

	state := c.State()
	if len(state.Messages) != 1 {
		t.Fatalf("got %d messages, want 1 seeded greeting", len(state.Messages))
	}
	if state.Messages[0].Sender != model.SenderAssistant {
		t.Errorf("greeting sender = %q", state.Messages[0].Sender)
	}
	if state.Unread != 0 {
		t.Errorf("seeded greeting bumped unread to %d", state.Unread)
	}
	if state.Open {
		t.Errorf("new session should start closed")
	}
}

func TestGreetingUsesUserName(t *testing.T) {
	c := newTestController(&model.User{ID: "u1", Name: "Dana"}, locale.English)

	state := c.State()
	if !strings.Contains(state.Messages[0].Text, "Dana") {
		t.Errorf("greeting does not mention the user: %q", state.Messages[0].Text)
	}
}

func TestSubmitAppendsBothMessages(t *testing.T) {
	c := newTestController(nil, locale.English)

	userMsg, replyMsg, err := c.Submit(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if userMsg.Sender != model.SenderUser || userMsg.Text != "hello" {
		t.Errorf("user message = %+v", userMsg)
	}
	if replyMsg.Sender != model.SenderAssistant || replyMsg.Text == "" {
		t.Errorf("assistant message = %+v", replyMsg)
	}

	state := c.State()
	if len(state.Messages) != 3 {
		t.Errorf("got %d messages, want greeting + user + reply", len(state.Messages))
	}
}

func TestSubmitTrimsAndRejectsEmpty(t *testing.T) {
	c := newTestController(nil, locale.English)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, _, err := c.Submit(context.Background(), text, ""); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("Submit(%q) error = %v, want ErrEmptyMessage", text, err)
		}
	}

	if got := len(c.State().Messages); got != 1 {
		t.Errorf("rejected submits changed the transcript: %d messages", got)
	}
}

func TestUnreadAccounting(t *testing.T) {
	c := newTestController(nil, locale.English)

	for i := 0; i < 3; i++ {
		if _, _, err := c.Submit(context.Background(), "hello", ""); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if got := c.State().Unread; got != 3 {
		t.Errorf("unread after 3 closed submits = %d, want 3", got)
	}

	resp := c.Toggle()
	if !resp.Open {
		t.Fatalf("first toggle should open the widget")
	}
	if resp.Unread != 0 {
		t.Errorf("opening did not reset unread: %d", resp.Unread)
	}
}

func TestSubmitWhileOpenDoesNotBumpUnread(t *testing.T) {
	c := newTestController(nil, locale.English)
	c.Toggle()

	if _, _, err := c.Submit(context.Background(), "hello", ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := c.State().Unread; got != 0 {
		t.Errorf("unread while open = %d, want 0", got)
	}
}

func TestClearReseedsGreeting(t *testing.T) {
	c := newTestController(nil, locale.English)
	if _, _, err := c.Submit(context.Background(), "hello", ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	before := c.State().Unread
	c.Clear(context.Background())

	state := c.State()
	if len(state.Messages) != 1 {
		t.Errorf("got %d messages after clear, want 1 greeting", len(state.Messages))
	}
	if state.Messages[0].Sender != model.SenderAssistant {
		t.Errorf("re-seeded message sender = %q", state.Messages[0].Sender)
	}
	if state.Unread != before {
		t.Errorf("clear changed unread from %d to %d", before, state.Unread)
	}
}

func TestSetLocaleReseedsLocalizedGreeting(t *testing.T) {
	c := newTestController(nil, locale.English)
	if _, _, err := c.Submit(context.Background(), "hello", ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := c.SetLocale(context.Background(), "bn"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}

	state := c.State()
	if state.Locale != "bn" {
		t.Errorf("locale = %q, want bn", state.Locale)
	}
	if len(state.Messages) != 1 {
		t.Errorf("got %d messages after locale change, want 1", len(state.Messages))
	}
	if !strings.Contains(state.Messages[0].Text, "স্বাগতম") {
		t.Errorf("greeting not localized: %q", state.Messages[0].Text)
	}
}

func TestSetLocaleRejectsUnknown(t *testing.T) {
	c := newTestController(nil, locale.English)

	if err := c.SetLocale(context.Background(), "fr"); !errors.Is(err, locale.ErrUnknown) {
		t.Errorf("SetLocale(fr) error = %v, want ErrUnknown", err)
	}
	if got := c.State().Locale; got != "en" {
		t.Errorf("failed locale change mutated locale to %q", got)
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(&stubFetcher{}, events.NoopPublisher{}, RegistryConfig{}, logger.NewNop())

	ctrl, err := r.Create(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}

	got, err := r.Get(ctrl.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != ctrl {
		t.Errorf("Get returned a different controller")
	}

	if err := r.Delete(context.Background(), ctrl.ID()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := r.Get(ctrl.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
	if err := r.Delete(context.Background(), ctrl.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete error = %v, want ErrNotFound", err)
	}
}

func TestRegistryRejectsUnknownLocale(t *testing.T) {
	r := NewRegistry(&stubFetcher{}, events.NoopPublisher{}, RegistryConfig{}, logger.NewNop())

	if _, err := r.Create(context.Background(), nil, "fr"); !errors.Is(err, locale.ErrUnknown) {
		t.Errorf("Create(fr) error = %v, want ErrUnknown", err)
	}
	if r.Count() != 0 {
		t.Errorf("failed create left %d sessions mounted", r.Count())
	}
}

func TestSweepIdle(t *testing.T) {
	r := NewRegistry(&stubFetcher{}, events.NoopPublisher{}, RegistryConfig{
		IdleTTL: time.Minute,
	}, logger.NewNop())

	if _, err := r.Create(context.Background(), nil, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if n := r.SweepIdle(context.Background(), time.Now()); n != 0 {
		t.Errorf("fresh session swept: %d", n)
	}
	if n := r.SweepIdle(context.Background(), time.Now().Add(time.Hour)); n != 1 {
		t.Errorf("stale session not swept: %d", n)
	}
	if r.Count() != 0 {
		t.Errorf("Count after sweep = %d, want 0", r.Count())
	}
}
