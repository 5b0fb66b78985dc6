package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopkori/assistant-platform/pkg/logger"
)

func TestProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("product fetch sent an Authorization header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"p1","name":"Galaxy Watch","description":"smart watch","category":"Electronics","price":4500,"in_stock":true,"stock_quantity":12,"rating":4.5}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.NewNop())
	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	p := products[0]
	if p.Name != "Galaxy Watch" || p.Price != 4500 || !p.InStock || p.StockQuantity != 12 {
		t.Errorf("decoded product = %+v", p)
	}
}

func TestOrdersSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/my-orders/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"order_id":"ORD-1001","order_status":"shipped","total_amount":2500,"items":[{"name":"Galaxy Watch","category":"Electronics"}]}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.NewNop())
	orders, err := c.Orders(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}
	o := orders[0]
	if o.ID != "ORD-1001" || o.Status != "shipped" || o.Total != 2500 {
		t.Errorf("decoded order = %+v", o)
	}
	if len(o.Items) != 1 || o.Items[0].Category != "Electronics" {
		t.Errorf("decoded items = %+v", o.Items)
	}
}

func TestNon200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.NewNop())
	if _, err := c.Products(context.Background()); err == nil {
		t.Errorf("expected error on 500 response")
	}
}

func TestMalformedBodyIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.NewNop())
	if _, err := c.Products(context.Background()); err == nil {
		t.Errorf("expected decode error")
	}
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Minute, logger.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := c.Products(ctx); err == nil {
		t.Errorf("expected error from canceled context")
	}
}
