// Package assistant synthesizes localized chat replies from a fetch-once
// catalog snapshot using rule-based intent classification.
package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shopkori/assistant-platform/internal/catalog"
	"github.com/shopkori/assistant-platform/internal/intent"
	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/model"
	"github.com/shopkori/assistant-platform/pkg/logger"
	"github.com/shopkori/assistant-platform/pkg/metrics"
)

// RequestContext carries opaque correlation fields from the widget. It has
// no behavioral effect on the reply; SessionID and Timestamp are logged.
type RequestContext struct {
	CurrentPage string
	SessionID   string
	Timestamp   time.Time
}

// Assistant owns an in-memory catalog snapshot and produces localized
// replies. An Assistant is bound to one locale and one (possibly absent)
// user identity; changing either means constructing a new Assistant.
type Assistant struct {
	locale  locale.Locale
	user    *model.User
	fetcher catalog.Fetcher
	logger  *logger.Logger

	mu          sync.Mutex
	initialized bool
	products    []model.Product
	orders      []model.Order
}

// New creates an Assistant. user may be nil for anonymous sessions.
func New(loc locale.Locale, user *model.User, fetcher catalog.Fetcher, log *logger.Logger) *Assistant {
	return &Assistant{
		locale:  loc,
		user:    user,
		fetcher: fetcher,
		logger:  log,
	}
}

// EnsureInitialized fetches the catalog snapshot exactly once. A failed
// fetch leaves the snapshot empty and still marks the Assistant
// initialized; handlers degrade to "not found" replies rather than
// retrying. Orders are only fetched for signed-in users, and their
// absence is never an error.
func (a *Assistant) EnsureInitialized(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return
	}
	a.initialized = true

	products, err := a.fetcher.Products(ctx)
	if err != nil {
		a.logger.Warn("catalog fetch failed, continuing with empty snapshot", zap.Error(err))
	} else {
		a.products = products
	}

	if a.user != nil {
		orders, err := a.fetcher.Orders(ctx, a.user.Token)
		if err != nil {
			a.logger.Debug("order fetch failed, continuing without history", zap.Error(err))
		} else {
			a.orders = orders
		}
	}
}

// GenerateResponse classifies the utterance and dispatches to the intent's
// handler. It reads the snapshot but never mutates it, and it always
// returns a localized reply; empty or missing data degrades to an
// informational message, never an error.
func (a *Assistant) GenerateResponse(ctx context.Context, text string, rc RequestContext) string {
	start := time.Now()
	a.EnsureInitialized(ctx)

	msg := strings.ToLower(strings.TrimSpace(text))
	it := intent.Classify(msg)

	a.logger.Debug("utterance classified",
		zap.String("intent", string(it)),
		zap.String("session_id", rc.SessionID),
		zap.String("current_page", rc.CurrentPage),
	)

	var reply string
	switch it {
	case intent.ProductSearch:
		reply = a.handleProductSearch(msg)
	case intent.ProductRecommendation:
		reply = a.handleRecommendation()
	case intent.OrderInquiry:
		reply = a.handleOrderInquiry()
	case intent.PricingInquiry:
		reply = a.handlePricingInquiry(msg)
	case intent.CategoryBrowse:
		reply = a.handleCategoryBrowse(msg)
	case intent.ComparisonRequest:
		reply = a.handleComparison(msg)
	case intent.SupportRequest:
		reply = a.render(locale.KeySupportResponse, nil)
	case intent.Greeting:
		reply = a.handleGreeting()
	case intent.ShippingPolicy:
		reply = a.render(locale.KeyShippingPolicy, nil)
	case intent.ReturnPolicy:
		reply = a.render(locale.KeyReturnPolicy, nil)
	case intent.PaymentMethods:
		reply = a.render(locale.KeyPaymentMethods, nil)
	case intent.WarrantyInfo:
		reply = a.handleWarranty(msg)
	case intent.SizeGuide:
		reply = a.handleSizeGuide(msg)
	case intent.AvailabilityCheck:
		reply = a.handleAvailability(msg)
	case intent.BulkOrder:
		reply = a.render(locale.KeyBulkOrder, nil)
	case intent.TechnicalSpecs:
		reply = a.handleTechnicalSpecs(msg)
	case intent.StoreLocation:
		reply = a.render(locale.KeyStoreLocation, nil)
	case intent.AccountHelp:
		reply = a.handleAccountHelp(msg)
	default:
		reply = a.render(locale.KeyDefaultResponse, nil)
	}

	metrics.RecordResponse(string(it), time.Since(start).Seconds())
	return reply
}

func (a *Assistant) render(key locale.Key, params map[string]string) string {
	return locale.Render(a.locale, key, params)
}

func (a *Assistant) userName() string {
	if a.user == nil {
		return ""
	}
	return a.user.Name
}
