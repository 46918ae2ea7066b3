package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/application"
	"github.com/frontline-homeworks/backend/internal/infrastructure/memstore"
	handlers "github.com/frontline-homeworks/backend/internal/interface/http"
	"github.com/frontline-homeworks/backend/internal/router/modules"
	"github.com/frontline-homeworks/backend/pkg/helpers"
	"github.com/frontline-homeworks/backend/pkg/mailer"
	"github.com/frontline-homeworks/backend/pkg/payments"
	"github.com/frontline-homeworks/backend/pkg/validation"
)

var setupOnce sync.Once

// stubGateway stands in for Stripe. Status controls what GetIntent reports.
type stubGateway struct {
	status  string
	created []int64 // amounts passed to CreateIntent, in cents
}

func (g *stubGateway) CreateIntent(_ context.Context, amountCents int64, _ string, _ map[string]string) (*payments.Intent, error) {
	g.created = append(g.created, amountCents)
	return &payments.Intent{ID: "pi_test", ClientSecret: "pi_test_secret", Status: "requires_payment_method", Amount: amountCents}, nil
}

func (g *stubGateway) GetIntent(_ context.Context, id string) (*payments.Intent, error) {
	return &payments.Intent{ID: id, Status: g.status, Amount: 2500}, nil
}

func (g *stubGateway) VerifyWebhook([]byte, string) (*payments.Event, error) {
	return nil, errors.New("not supported in tests")
}

type env struct {
	router   *gin.Engine
	jwt      *helpers.JWTManager
	users    *memstore.UserStore
	products *memstore.ProductStore
	orders   *memstore.OrderStore
	contacts *memstore.ContactStore
	gateway  *stubGateway
}

// newEnv builds the full route surface against fresh stores, a stub
// gateway and a dropped notifier. The seed admin always gets id 1.
func newEnv(t *testing.T) *env {
	t.Helper()
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ring := helpers.NewRingHook(50)
	logger.AddHook(ring)

	e := &env{
		jwt:      helpers.NewJWTManager("test-secret", time.Hour),
		users:    memstore.NewUserStore(),
		products: memstore.NewProductStore(),
		orders:   memstore.NewOrderStore(),
		contacts: memstore.NewContactStore(),
		gateway:  &stubGateway{status: payments.StatusSucceeded},
	}
	if err := memstore.SeedUsers(e.users, "admin@frontline.com", "admin123"); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if err := memstore.SeedProducts(e.products); err != nil {
		t.Fatalf("seed products: %v", err)
	}

	notifier := mailer.NopNotifier{}
	authSvc := application.NewAuthService(e.users, e.jwt, notifier, logger, "FRONTLINE Homeworks", "http://localhost:3000")
	paymentSvc := application.NewPaymentService(e.orders, e.gateway, notifier, logger, "FRONTLINE Homeworks")
	contactSvc := application.NewContactService(e.contacts, notifier, logger, "FRONTLINE Homeworks")
	adminSvc := application.NewAdminService(e.users, e.orders, e.contacts, logger)

	r := gin.New()
	api := r.Group("/api")
	modules.NewProductModule(handlers.NewProductHandler(e.products, logger), e.jwt).Register(api)
	modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), e.jwt).Register(api)
	modules.NewContactModule(handlers.NewContactHandler(contactSvc, e.contacts, logger), e.jwt).Register(api)
	modules.NewPaymentModule(handlers.NewPaymentHandler(paymentSvc, logger, "pk_test"), e.jwt).Register(api)
	modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, ring, logger), e.jwt).Register(api)
	e.router = r
	return e
}

func (e *env) token(t *testing.T, userID int64, role string) string {
	t.Helper()
	tok, _, err := e.jwt.Generate(userID, role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok
}

func (e *env) adminToken(t *testing.T) string { return e.token(t, 1, helpers.RoleAdmin) }

// do runs a request and decodes the response envelope.
func (e *env) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
