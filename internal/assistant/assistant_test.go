package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/model"
	"github.com/shopkori/assistant-platform/pkg/logger"
)

type fakeFetcher struct {
	products    []model.Product
	orders      []model.Order
	productsErr error
	ordersErr   error

	productCalls int
	orderCalls   int
}

func (f *fakeFetcher) Products(ctx context.Context) ([]model.Product, error) {
	f.productCalls++
	return f.products, f.productsErr
}

func (f *fakeFetcher) Orders(ctx context.Context, token string) ([]model.Order, error) {
	f.orderCalls++
	return f.orders, f.ordersErr
}

var galaxyWatch = model.Product{
	ID:            "p1",
	Name:          "Galaxy Watch",
	Description:   "Smart watch with AMOLED display and week-long battery",
	Category:      "Electronics",
	Price:         4500,
	InStock:       true,
	StockQuantity: 12,
	Rating:        4.5,
}

func respond(t *testing.T, a *Assistant, text string) string {
	t.Helper()
	return a.GenerateResponse(context.Background(), text, RequestContext{SessionID: "test"})
}

func TestGenerateResponseDeterministic(t *testing.T) {
	f := &fakeFetcher{products: []model.Product{galaxyWatch}}
	a := New(locale.English, nil, f, logger.NewNop())

	first := respond(t, a, "how much is galaxy watch")
	second := respond(t, a, "how much is galaxy watch")
	if first != second {
		t.Errorf("identical inputs produced different replies:\n%q\n%q", first, second)
	}
}

func TestGreetingGuest(t *testing.T) {
	a := New(locale.English, nil, &fakeFetcher{}, logger.NewNop())

	got := respond(t, a, "hello")
	if !strings.Contains(got, "Welcome to our store") {
		t.Errorf("guest greeting = %q", got)
	}
	if strings.Contains(got, "{name}") {
		t.Errorf("guest greeting leaked a placeholder: %q", got)
	}
}

func TestGreetingSignedIn(t *testing.T) {
	user := &model.User{ID: "u1", Name: "Dana"}
	a := New(locale.English, user, &fakeFetcher{}, logger.NewNop())

	got := respond(t, a, "hi there, thanks")
	if !strings.Contains(got, "Dana") {
		t.Errorf("greeting does not mention the user: %q", got)
	}
}

func TestPricingInquiry(t *testing.T) {
	f := &fakeFetcher{products: []model.Product{galaxyWatch}}
	a := New(locale.English, nil, f, logger.NewNop())

	got := respond(t, a, "how much is galaxy watch")
	if !strings.Contains(got, "Galaxy Watch") {
		t.Errorf("pricing reply does not name the product: %q", got)
	}
	if !strings.Contains(got, "৳4500") {
		t.Errorf("pricing reply does not show the price: %q", got)
	}
}

func TestProductSearchEmptyCatalog(t *testing.T) {
	a := New(locale.English, nil, &fakeFetcher{}, logger.NewNop())

	got := respond(t, a, "show me laptops")
	if !strings.Contains(got, "laptops") {
		t.Errorf("not-found reply does not echo the term: %q", got)
	}
	if !strings.Contains(got, "couldn't find") {
		t.Errorf("not-found reply missing: %q", got)
	}
}

func TestComparisonInsufficientProducts(t *testing.T) {
	f := &fakeFetcher{products: []model.Product{
		{ID: "p2", Name: "Smart Phone X", Description: "flagship phone", Category: "Electronics", Price: 30000},
	}}
	a := New(locale.English, nil, f, logger.NewNop())

	got := respond(t, a, "compare phone and watch")
	if !strings.Contains(got, "at least 2 products") {
		t.Errorf("expected insufficient-products reply, got %q", got)
	}
}

func TestComparisonTwoProducts(t *testing.T) {
	f := &fakeFetcher{products: []model.Product{
		{ID: "p2", Name: "Phone A", Description: "budget phone", Category: "Electronics", Price: 10000},
		{ID: "p3", Name: "Phone B", Description: "flagship phone", Category: "Electronics", Price: 30000},
	}}
	a := New(locale.English, nil, f, logger.NewNop())

	got := respond(t, a, "compare phone models")
	if !strings.Contains(got, "Phone A") || !strings.Contains(got, "Phone B") {
		t.Errorf("comparison does not name both products: %q", got)
	}
	if !strings.Contains(got, "৳10000") || !strings.Contains(got, "৳30000") {
		t.Errorf("comparison does not show both prices: %q", got)
	}
}

func TestOrderInquiryRequiresLogin(t *testing.T) {
	a := New(locale.English, nil, &fakeFetcher{}, logger.NewNop())

	got := respond(t, a, "where is my order")
	if !strings.Contains(got, "log in") {
		t.Errorf("expected login prompt, got %q", got)
	}
}

func TestOrderInquiryNoOrders(t *testing.T) {
	user := &model.User{ID: "u1", Name: "Dana", Token: "tok"}
	a := New(locale.English, user, &fakeFetcher{}, logger.NewNop())

	got := respond(t, a, "where is my order")
	if !strings.Contains(got, "don't have any orders") {
		t.Errorf("expected no-orders reply, got %q", got)
	}
}

func TestOrderInquiryMostRecent(t *testing.T) {
	user := &model.User{ID: "u1", Name: "Dana", Token: "tok"}
	f := &fakeFetcher{orders: []model.Order{
		{ID: "ORD-1001", Status: "shipped", Total: 2500},
		{ID: "ORD-0900", Status: "delivered", Total: 800},
	}}
	a := New(locale.English, user, f, logger.NewNop())

	got := respond(t, a, "where is my order")
	if !strings.Contains(got, "ORD-1001") || !strings.Contains(got, "shipped") {
		t.Errorf("expected most recent order details, got %q", got)
	}
	if !strings.Contains(got, "৳2500") {
		t.Errorf("expected order total, got %q", got)
	}
}

func TestRecommendationRanksByRating(t *testing.T) {
	f := &fakeFetcher{products: []model.Product{
		{ID: "p1", Name: "Alpha", Description: "entry model", Category: "Electronics", Price: 100, Rating: 3.0},
		{ID: "p2", Name: "Beta", Description: "premium model", Category: "Electronics", Price: 300, Rating: 5.0},
		{ID: "p3", Name: "Gamma", Description: "mid model", Category: "Electronics", Price: 200, Rating: 4.0},
	}}
	a := New(locale.English, nil, f, logger.NewNop())

	got := respond(t, a, "recommend something")
	beta := strings.Index(got, "Beta")
	gamma := strings.Index(got, "Gamma")
	alpha := strings.Index(got, "Alpha")
	if beta == -1 || gamma == -1 || alpha == -1 {
		t.Fatalf("recommendation missing products: %q", got)
	}
	if !(beta < gamma && gamma < alpha) {
		t.Errorf("recommendations not ordered by rating: %q", got)
	}
}

func TestRecommendationPersonalized(t *testing.T) {
	user := &model.User{ID: "u1", Name: "Dana", Token: "tok"}
	f := &fakeFetcher{
		products: []model.Product{
			{ID: "p1", Name: "Classic Watch", Description: "leather strap", Category: "Watches", Price: 2000, Rating: 4.0},
			{ID: "p2", Name: "Cook Book", Description: "recipes", Category: "Books", Price: 500, Rating: 4.8},
		},
		orders: []model.Order{
			{ID: "ORD-1", Status: "delivered", Total: 2000, Items: []model.OrderItem{
				{Name: "Old Watch", Category: "Watches"},
			}},
		},
	}
	a := New(locale.English, user, f, logger.NewNop())

	got := respond(t, a, "recommend something")
	if !strings.Contains(got, "Dana") {
		t.Errorf("personalized intro missing name: %q", got)
	}
	if !strings.Contains(got, "Classic Watch") {
		t.Errorf("expected pick from order-history category: %q", got)
	}
	if strings.Contains(got, "Cook Book") {
		t.Errorf("pick outside order-history categories: %q", got)
	}
}

func TestAvailabilityInStock(t *testing.T) {
	f := &fakeFetcher{products: []model.Product{galaxyWatch}}
	a := New(locale.English, nil, f, logger.NewNop())

	got := respond(t, a, "is galaxy watch in stock")
	if !strings.Contains(got, "IN STOCK") {
		t.Errorf("expected in-stock reply, got %q", got)
	}
	if !strings.Contains(got, "12 units") {
		t.Errorf("expected stock quantity, got %q", got)
	}
}

func TestAvailabilityOutOfStock(t *testing.T) {
	p := galaxyWatch
	p.InStock = false
	p.StockQuantity = 0
	f := &fakeFetcher{products: []model.Product{p}}
	a := New(locale.English, nil, f, logger.NewNop())

	got := respond(t, a, "is galaxy watch in stock")
	if !strings.Contains(got, "OUT OF STOCK") {
		t.Errorf("expected out-of-stock reply, got %q", got)
	}
}

func TestSnapshotFetchedOnce(t *testing.T) {
	f := &fakeFetcher{products: []model.Product{galaxyWatch}}
	a := New(locale.English, nil, f, logger.NewNop())

	respond(t, a, "hello")
	respond(t, a, "show me watches")
	if f.productCalls != 1 {
		t.Errorf("products fetched %d times, want 1", f.productCalls)
	}
}

func TestFetchFailureDegrades(t *testing.T) {
	f := &fakeFetcher{productsErr: context.DeadlineExceeded}
	a := New(locale.English, nil, f, logger.NewNop())

	got := respond(t, a, "show me laptops")
	if !strings.Contains(got, "couldn't find") {
		t.Errorf("expected graceful not-found reply, got %q", got)
	}

	// A failed fetch is not retried on later requests.
	respond(t, a, "show me laptops")
	if f.productCalls != 1 {
		t.Errorf("products fetched %d times after failure, want 1", f.productCalls)
	}
}

func TestOrdersNotFetchedForGuests(t *testing.T) {
	f := &fakeFetcher{products: []model.Product{galaxyWatch}}
	a := New(locale.English, nil, f, logger.NewNop())

	respond(t, a, "hello")
	if f.orderCalls != 0 {
		t.Errorf("orders fetched for anonymous session: %d calls", f.orderCalls)
	}
}

func TestLocalizedReply(t *testing.T) {
	a := New(locale.Bengali, nil, &fakeFetcher{}, logger.NewNop())

	got := respond(t, a, "hello")
	if !strings.Contains(got, "স্বাগতম") {
		t.Errorf("expected Bengali greeting, got %q", got)
	}
}
