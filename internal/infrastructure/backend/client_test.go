package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 5*time.Second, zerolog.Nop())
}

func TestBearerTokenInjection(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"success","data":[]}`))
	})

	ctx := WithToken(context.Background(), "tok-123")
	if _, err := client.ListCategories(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected Authorization 'Bearer tok-123', got %q", gotAuth)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"token":"t","role":"ADMIN"}`))
	})

	if _, err := client.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"status":"error","message":"Category is linked with products"}`))
	})

	err := client.DeleteCategory(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Category is linked with products" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	})

	err := client.DeleteProduct(context.Background(), 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "request failed" {
		t.Fatalf("expected fallback message, got %q", apiErr.Message)
	}
}

func TestListProductsPagedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "usb" {
			t.Errorf("expected search=usb, got %q", got)
		}
		if got := r.URL.Query().Get("sort"); got != "name,asc" {
			t.Errorf("expected sort=name,asc, got %q", got)
		}
		w.Write([]byte(`{"status":"success","data":{
			"content":[
				{"id":4,"name":"USB Cable","sellingPrice":"3.50",
				 "category":{"id":2,"categoryName":"Accessories"},
				 "supplier":{"id":9,"name":"Acme"}}
			],
			"totalElements":41,"number":2}}`))
	})

	page, err := client.ListProducts(context.Background(), ports.ProductQuery{
		Page: 2, Size: 10, Search: "usb", Sort: "name,asc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 41 || page.Page != 2 {
		t.Fatalf("unexpected page meta: %+v", page)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(page.Items))
	}
	p := page.Items[0]
	if p.CategoryName != "Accessories" {
		t.Fatalf("expected category name from categoryName field, got %q", p.CategoryName)
	}
	if p.SupplierName != "Acme" {
		t.Fatalf("expected supplier name from name field, got %q", p.SupplierName)
	}
	if p.SellingPrice.String() != "3.5" {
		t.Fatalf("unexpected selling price: %s", p.SellingPrice)
	}
}

func TestListProductsBareArrayFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Mouse"},{"id":2,"name":"Keyboard"}]`))
	})

	page, err := client.ListProducts(context.Background(), ports.ProductQuery{Page: 0, Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 2 || len(page.Items) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestListUsersBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"username":"amit","role":"ADMIN","active":true},
			{"id":2,"username":"nina","role":"SALES_EXECUTIVE","active":false}]`))
	})

	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Role != "SALES_EXECUTIVE" || users[1].Active {
		t.Fatalf("unexpected user mapping: %+v", users[1])
	}
}

func TestSetUserActiveRoutes(t *testing.T) {
	var gotPath, gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"status":"success"}`))
	})

	if err := client.SetUserActive(context.Background(), 5, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/users/user/5/active" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}

	if err := client.SetUserActive(context.Background(), 5, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/users/user/5/deactive" {
		t.Fatalf("unexpected deactivate path %s", gotPath)
	}
}

func TestReportEndpointPaths(t *testing.T) {
	var gotPath string
	body := `{"status":"success","data":[]}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(body))
	})
	ctx := context.Background()

	object := `{"status":"success","data":{}}`
	list := `{"status":"success","data":[]}`

	calls := []struct {
		name string
		call func() error
		body string
		path string
	}{
		{"stats", func() error { _, err := client.Stats(ctx); return err }, object, "/api/reports/stats"},
		{"daily sales", func() error { _, err := client.DailySales(ctx); return err }, list, "/api/reports/sales/daily"},
		{"monthly sales", func() error { _, err := client.MonthlySales(ctx); return err }, list, "/api/reports/sales/monthly"},
		{"low stock", func() error { _, err := client.LowStock(ctx); return err }, list, "/api/reports/stock/low"},
		{"low stock overview", func() error { _, err := client.LowStockOverview(ctx); return err }, list, "/api/reports/low-stock"},
		{"today summary", func() error { _, err := client.TodaySummary(ctx); return err }, object, "/api/reports/today-summary"},
		{"top products", func() error { _, err := client.TopProducts(ctx); return err }, list, "/api/reports/sales/top-products"},
		{"category sales", func() error { _, err := client.CategorySales(ctx); return err }, list, "/api/reports/sales/category-wise"},
	}
	for _, tc := range calls {
		body = tc.body
		if err := tc.call(); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if gotPath != tc.path {
			t.Errorf("%s: requested %q, want %q", tc.name, gotPath, tc.path)
		}
	}
}

func TestSubmitSalePayload(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"status":"success","data":{"id":301}}`))
	})

	res, err := client.SubmitSale(context.Background(), ports.SaleInput{
		CustomerName: "Walk-in",
		ProductIDs:   []int64{4, 9},
		Quantities:   []int{2, 1},
		UserID:       12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != 301 {
		t.Fatalf("expected sale id 301, got %d", res.ID)
	}
	for _, want := range []string{`"customerName":"Walk-in"`, `"productIds":[4,9]`, `"quantities":[2,1]`, `"userId":12`} {
		if !strings.Contains(gotBody, want) {
			t.Fatalf("request body missing %s: %s", want, gotBody)
		}
	}
}
