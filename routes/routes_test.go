package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/efeurhobobullish/SwiftBuy/config"
	"github.com/efeurhobobullish/SwiftBuy/controllers"
	"github.com/efeurhobobullish/SwiftBuy/middleware"
	"github.com/efeurhobobullish/SwiftBuy/repositories"
	"github.com/efeurhobobullish/SwiftBuy/services"
)

var setupOnce sync.Once

func newTestRouter() *gin.Engine {
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		config.LoadConfig()
	})

	catalog := repositories.NewCatalogRepository()
	carts := repositories.NewCartRepository()
	orders := repositories.NewOrderRepository()
	sessions := repositories.NewSessionRepository(nil, time.Hour)

	productSvc := services.NewProductService(catalog)
	checkoutSvc := services.NewCheckoutService(nil)
	authSvc := services.NewAuthService(sessions)

	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	SetupRoutes(router, &Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		Product:  controllers.NewProductController(productSvc),
		Cart:     controllers.NewCartController(carts, productSvc),
		Checkout: controllers.NewCheckoutController(checkoutSvc, carts, orders, authSvc),
		Order:    controllers.NewOrderController(orders),
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestProductEndpoints(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/products?limit=5", "", "")
	if w.Code != 200 {
		t.Fatalf("list products: %d", w.Code)
	}
	body := decodeBody(t, w)
	meta := body["meta"].(map[string]interface{})
	if meta["total_items"].(float64) != 8 {
		t.Fatalf("unexpected meta: %+v", meta)
	}

	if w := doJSON(t, router, http.MethodGet, "/products/1", "", ""); w.Code != 200 {
		t.Fatalf("get product: %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/products/999", "", ""); w.Code != 404 {
		t.Fatalf("missing product: %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/categories", "", ""); w.Code != 200 {
		t.Fatalf("categories: %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/delivery-options", "", ""); w.Code != 200 {
		t.Fatalf("delivery options: %d", w.Code)
	}
}

func TestGuestCartAndCheckoutFlow(t *testing.T) {
	router := newTestRouter()

	// First cart call without a session gets one issued.
	w := doJSON(t, router, http.MethodPost, "/cart/items", "", `{"product_id":"1"}`)
	if w.Code != 200 {
		t.Fatalf("add item: %d (%s)", w.Code, w.Body.String())
	}
	session := w.Header().Get("X-Session-Id")
	if session == "" {
		t.Fatal("expected an issued session id")
	}

	// Same product again increments the line.
	w = doJSON(t, router, http.MethodPost, "/cart/items", session, `{"product_id":"1"}`)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if data["total_items"].(float64) != 2 {
		t.Fatalf("expected 2 items, got %v", data["total_items"])
	}
	if data["total_price"].(float64) != 1700000 {
		t.Fatalf("expected price 1700000, got %v", data["total_price"])
	}

	// Quote against Lagos.
	w = doJSON(t, router, http.MethodPost, "/checkout/quote", session, `{"city":"Lagos"}`)
	if w.Code != 200 {
		t.Fatalf("quote: %d (%s)", w.Code, w.Body.String())
	}
	quote := decodeBody(t, w)["data"].(map[string]interface{})
	if quote["total"].(float64) != 1701500 {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	// Missing street is rejected and the cart survives.
	w = doJSON(t, router, http.MethodPost, "/checkout", session, `{"city":"Lagos","street":"  "}`)
	if w.Code != 400 {
		t.Fatalf("blank street: %d", w.Code)
	}

	// Unknown city is rejected.
	w = doJSON(t, router, http.MethodPost, "/checkout", session, `{"city":"Atlantis","street":"12 Marina Rd"}`)
	if w.Code != 400 {
		t.Fatalf("unknown city: %d", w.Code)
	}

	// Successful submit creates the order and clears the cart.
	w = doJSON(t, router, http.MethodPost, "/checkout", session, `{"city":"Lagos","street":"12 Marina Rd"}`)
	if w.Code != 201 {
		t.Fatalf("submit: %d (%s)", w.Code, w.Body.String())
	}
	order := decodeBody(t, w)["data"].(map[string]interface{})
	reference := order["id"].(string)
	if !strings.HasPrefix(reference, "ORD-") {
		t.Fatalf("unexpected reference: %s", reference)
	}
	if order["status"].(string) != "processing" {
		t.Fatalf("unexpected status: %v", order["status"])
	}

	w = doJSON(t, router, http.MethodGet, "/cart", session, "")
	cart := decodeBody(t, w)["data"].(map[string]interface{})
	if cart["total_items"].(float64) != 0 {
		t.Fatalf("cart not cleared after checkout: %+v", cart)
	}

	// The order is retrievable and scoped to this session.
	if w := doJSON(t, router, http.MethodGet, "/orders/"+reference, session, ""); w.Code != 200 {
		t.Fatalf("get order: %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/orders", session, "")
	if orders := decodeBody(t, w)["data"].([]interface{}); len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	// Checkout on the now-empty cart fails.
	w = doJSON(t, router, http.MethodPost, "/checkout", session, `{"city":"Lagos","street":"12 Marina Rd"}`)
	if w.Code != 400 {
		t.Fatalf("empty cart checkout: %d", w.Code)
	}
}

func TestCartSessionIsolationOverHTTP(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/cart/items", "session-a", `{"product_id":"3"}`)

	w := doJSON(t, router, http.MethodGet, "/cart", "session-b", "")
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if data["total_items"].(float64) != 0 {
		t.Fatalf("cart leaked between sessions: %+v", data)
	}
}

func TestAuthFlowOverHTTP(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/auth/login", "", `{"provider":"google"}`)
	if w.Code != 200 {
		t.Fatalf("provider login: %d (%s)", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	token := data["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("profile: %d (%s)", rec.Code, rec.Body.String())
	}

	if w := doJSON(t, router, http.MethodGet, "/auth/profile", "", ""); w.Code != 401 {
		t.Fatalf("profile without token: %d", w.Code)
	}

	if w := doJSON(t, router, http.MethodPost, "/auth/login", "", `{"email":"ghost@example.com","password":"nope"}`); w.Code != 401 {
		t.Fatalf("bad credentials: %d", w.Code)
	}
}
