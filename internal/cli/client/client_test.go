package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL + "/api")
	if err != nil {
		t.Fatal(err)
	}
	return c, srv
}

// deadClient points at a server that is already gone, so every request
// fails at the transport level.
func deadClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url + "/api")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:8080/api", "http://localhost:8080/api"},
		{"http://localhost:8080/api/", "http://localhost:8080/api"},
		{"localhost:8080", "http://localhost:8080"},
		{"https://shop.example.com/api", "https://shop.example.com/api"},
	}
	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if err != nil {
			t.Errorf("normalizeBaseURL(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := normalizeBaseURL("://"); err == nil {
		t.Error("expected an error for a URL without a host")
	}
}

func TestGetProducts(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		io.WriteString(w, `{
			"success": true,
			"data": [
				{"id": "aura-sound-01", "name": "Aura Sound", "price": 120},
				{"id": "aura-halo-02", "name": "Aura Halo", "price": 85}
			],
			"message": null
		}`)
	})
	c, _ := newTestClient(t, handler)

	env := c.GetProducts(context.Background())
	if !env.Success {
		t.Fatalf("envelope failed: %q", env.Message)
	}
	products := *env.Data
	if len(products) != 2 || products[0].ID != "aura-sound-01" {
		t.Errorf("products = %+v", products)
	}
}

func TestBackendFailureEnvelopePassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"success": false, "data": null, "message": "Product not found"}`)
	})
	c, _ := newTestClient(t, handler)

	env := c.GetProduct(context.Background(), "missing-id")
	if env.Success {
		t.Error("expected a failed envelope")
	}
	if env.Message != "Product not found" {
		t.Errorf("message = %q", env.Message)
	}
	if env.Data != nil {
		t.Errorf("data = %+v, want nil", env.Data)
	}
}

func TestTransportFailureBecomesFailedEnvelope(t *testing.T) {
	c := deadClient(t)

	env := c.CreateOrder(context.Background(), &types.OrderRequest{})
	if env.Success {
		t.Error("expected a failed envelope")
	}
	if env.Data != nil {
		t.Errorf("data = %+v, want nil", env.Data)
	}
	if env.Message == "" {
		t.Error("expected a non-empty failure message")
	}
}

func TestNonJSONBodyBecomesFailedEnvelope(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>gateway timeout</html>")
	})
	c, _ := newTestClient(t, handler)

	env := c.GetProducts(context.Background())
	if env.Success {
		t.Error("expected a failed envelope")
	}
	if env.Message == "" {
		t.Error("expected a non-empty failure message")
	}
}

func TestCreateOrderRequestBody(t *testing.T) {
	var captured types.OrderRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(body, &captured); err != nil {
			t.Errorf("request body not valid JSON: %v", err)
		}
		io.WriteString(w, `{"success": true, "data": {"orderNumber": "ORD-7"}, "message": null}`)
	})
	c, _ := newTestClient(t, handler)

	env := c.CreateOrder(context.Background(), &types.OrderRequest{
		CustomerName:    "Mia Ito",
		CustomerEmail:   "mia@example.com",
		ShippingAddress: "12 Calm St, Kyoto 600-8001",
		Items:           []types.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})

	if !env.Success || env.Data == nil || env.Data.OrderNumber != "ORD-7" {
		t.Fatalf("envelope = %+v", env)
	}
	if captured.CustomerName != "Mia Ito" || len(captured.Items) != 1 {
		t.Errorf("captured request = %+v", captured)
	}
}

func TestUpdateOrderAddressSendsBareString(t *testing.T) {
	var body string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/orders/ORD-7/address" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		io.WriteString(w, `{"success": true, "data": {"orderNumber": "ORD-7"}, "message": null}`)
	})
	c, _ := newTestClient(t, handler)

	env := c.UpdateOrderAddress(context.Background(), "ORD-7", "99 New St, Osaka 530-0001")
	if !env.Success {
		t.Fatalf("envelope failed: %q", env.Message)
	}
	if want := `"99 New St, Osaka 530-0001"`; body != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestSearchProductsEscapesKeyword(t *testing.T) {
	var query string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("q")
		io.WriteString(w, `{"success": true, "data": [], "message": null}`)
	})
	c, _ := newTestClient(t, handler)

	c.SearchProducts(context.Background(), "oak & linen")
	if query != "oak & linen" {
		t.Errorf("keyword = %q", query)
	}
}

func TestSendChatMessage(t *testing.T) {
	var captured types.ChatRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ai/chat" {
			t.Errorf("path = %q", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(raw, &captured); err != nil {
			t.Errorf("request body not valid JSON: %v", err)
		}
		if !strings.Contains(string(raw), `"sessionId"`) {
			t.Error("session id missing from request body")
		}
		io.WriteString(w, `{
			"success": true,
			"data": {"message": "Hi there", "sessionId": "abc123"},
			"message": null
		}`)
	})
	c, _ := newTestClient(t, handler)

	resp, err := c.SendChatMessage(context.Background(), &types.ChatRequest{
		Message:   "Hello",
		SessionID: "abc123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp == nil || resp.Message != "Hi there" || resp.SessionID != "abc123" {
		t.Errorf("response = %+v", resp)
	}
	if captured.Message != "Hello" {
		t.Errorf("captured request = %+v", captured)
	}
}

func TestSendChatMessageOmitsEmptySession(t *testing.T) {
	var raw string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		io.WriteString(w, `{"success": true, "data": {"message": "hi", "sessionId": "s1"}, "message": null}`)
	})
	c, _ := newTestClient(t, handler)

	if _, err := c.SendChatMessage(context.Background(), &types.ChatRequest{Message: "Hello"}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(raw, `"sessionId"`) {
		t.Errorf("first request carried a session id: %s", raw)
	}
}

func TestSendChatMessageAbsentData(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": false, "data": null, "message": "assistant unavailable"}`)
	})
	c, _ := newTestClient(t, handler)

	resp, err := c.SendChatMessage(context.Background(), &types.ChatRequest{Message: "Hello"})
	if err != nil {
		t.Fatalf("absent data must not be an error, got %v", err)
	}
	if resp != nil {
		t.Errorf("response = %+v, want nil", resp)
	}
}

func TestSendChatMessageTransportError(t *testing.T) {
	c := deadClient(t)

	resp, err := c.SendChatMessage(context.Background(), &types.ChatRequest{Message: "Hello"})
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if resp != nil {
		t.Errorf("response = %+v, want nil", resp)
	}
}
