package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopkori/assistant-platform/internal/assistant"
	"github.com/shopkori/assistant-platform/internal/catalog"
	"github.com/shopkori/assistant-platform/internal/events"
	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/model"
	"github.com/shopkori/assistant-platform/pkg/logger"
	"github.com/shopkori/assistant-platform/pkg/metrics"
)

// RegistryConfig tunes session lifecycle behavior.
type RegistryConfig struct {
	DefaultLocale   locale.Locale
	IdleTTL         time.Duration
	ResponseTimeout time.Duration
}

// Registry holds all mounted chat sessions in memory.
type Registry struct {
	fetcher   catalog.Fetcher
	publisher events.Publisher
	logger    *logger.Logger
	cfg       RegistryConfig

	mu       sync.RWMutex
	sessions map[string]*Controller
}

// NewRegistry creates an empty session registry.
func NewRegistry(fetcher catalog.Fetcher, publisher events.Publisher, cfg RegistryConfig, log *logger.Logger) *Registry {
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = locale.English
	}
	if cfg.ResponseTimeout <= 0 {
		cfg.ResponseTimeout = 10 * time.Second
	}
	return &Registry{
		fetcher:   fetcher,
		publisher: publisher,
		logger:    log,
		cfg:       cfg,
		sessions:  make(map[string]*Controller),
	}
}

// Create mounts a new session. rawLocale may be empty for the default;
// an unknown locale is an error. user may be nil.
func (r *Registry) Create(ctx context.Context, user *model.User, rawLocale string) (*Controller, error) {
	loc := r.cfg.DefaultLocale
	if rawLocale != "" {
		parsed, err := locale.Parse(rawLocale)
		if err != nil {
			return nil, err
		}
		loc = parsed
	}

	factory := func(l locale.Locale, u *model.User) *assistant.Assistant {
		return assistant.New(l, u, r.fetcher, r.logger)
	}

	id := uuid.Must(uuid.NewV7()).String()
	ctrl := NewController(id, user, loc, factory, r.publisher, r.cfg.ResponseTimeout, r.logger)

	r.mu.Lock()
	r.sessions[id] = ctrl
	r.mu.Unlock()

	metrics.SessionsActive.Inc()
	r.publisher.SessionEvent(ctx, model.ChatEvent{
		ID:        uuid.Must(uuid.NewV7()).String(),
		SessionID: id,
		Type:      model.EventTypeSessionStarted,
		Locale:    string(loc),
		CreatedAt: time.Now(),
	})

	r.logger.Info("session created",
		zap.String("session_id", id),
		zap.String("locale", string(loc)),
		zap.String("user_id", userID(user)),
	)
	return ctrl, nil
}

// Get returns a mounted session by ID.
func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.RLock()
	ctrl, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return ctrl, nil
}

// Delete unmounts a session, discarding its transcript.
func (r *Registry) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	ctrl, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	metrics.SessionsActive.Dec()
	r.publisher.SessionEvent(ctx, ctrl.event(model.EventTypeSessionEnded, ""))
	r.logger.Info("session ended", zap.String("session_id", id))
	return nil
}

// Count reports the number of mounted sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SweepIdle unmounts sessions idle longer than the configured TTL and
// returns how many were removed. A zero TTL disables sweeping.
func (r *Registry) SweepIdle(ctx context.Context, now time.Time) int {
	if r.cfg.IdleTTL <= 0 {
		return 0
	}

	r.mu.RLock()
	var stale []string
	for id, ctrl := range r.sessions {
		if now.Sub(ctrl.LastActivity()) > r.cfg.IdleTTL {
			stale = append(stale, id)
		}
	}
	r.mu.RUnlock()

	for _, id := range stale {
		if err := r.Delete(ctx, id); err == nil {
			r.logger.Debug("idle session swept", zap.String("session_id", id))
		}
	}
	return len(stale)
}

// StartSweeper runs SweepIdle on the given interval until ctx is done.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.SweepIdle(ctx, now)
		}
	}
}
