package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	billingapp "github.com/atelier/backend/internal/application/billing"
	clientapp "github.com/atelier/backend/internal/application/client"
	orderapp "github.com/atelier/backend/internal/application/order"
	settingsapp "github.com/atelier/backend/internal/application/settings"
	domainsettings "github.com/atelier/backend/internal/domain/settings"
	"github.com/atelier/backend/internal/infrastructure/persistence/memory"
	"github.com/atelier/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memorySettingsStore struct {
	saved *domainsettings.AppSettings
}

func (s *memorySettingsStore) Load() (domainsettings.AppSettings, error) {
	if s.saved == nil {
		return domainsettings.Defaults(), nil
	}
	return *s.saved, nil
}

func (s *memorySettingsStore) Save(settings domainsettings.AppSettings) error {
	s.saved = &settings
	return nil
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	clientRepo := memory.NewClientRepository()
	orderRepo := memory.NewOrderRepository()
	invoiceRepo := memory.NewInvoiceRepository()
	paymentRepo := memory.NewPaymentRepository()

	clientService := clientapp.NewService(clientRepo, logger)
	orderService := orderapp.NewService(orderRepo, clientRepo, logger)
	orderProvider := orderapp.NewProvider(orderRepo)
	reconciler := billingapp.NewReconciler(invoiceRepo, paymentRepo, logger)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, paymentRepo, orderProvider, reconciler, logger)
	paymentService := billingapp.NewPaymentService(paymentRepo, invoiceRepo, reconciler, logger)
	settingsService := settingsapp.NewService(&memorySettingsStore{}, logger)

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewClientHandler(clientService)).
		Register(NewOrderHandler(orderService)).
		Register(NewInvoiceHandler(invoiceService)).
		Register(NewPaymentHandler(paymentService)).
		Register(NewSettingsHandler(settingsService))
	r.Setup()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	return resp.Error.Code
}

func createClient(t *testing.T, engine *gin.Engine) string {
	w := doJSON(t, engine, http.MethodPost, "/api/v1/clients", gin.H{
		"name":         "Ayse Demir",
		"phone_number": "+90 555 000 0000",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return dataField(t, w)["id"].(string)
}

func createOrder(t *testing.T, engine *gin.Engine, clientID string, price string) string {
	body := gin.H{
		"client_id": clientID,
		"deadline":  time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	}
	if price != "" {
		body["price"] = price
	}
	w := doJSON(t, engine, http.MethodPost, "/api/v1/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)
	return dataField(t, w)["id"].(string)
}

func TestClientEndpoints(t *testing.T) {
	engine := newTestServer(t)

	id := createClient(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/clients/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ayse Demir", dataField(t, w)["name"])

	// Missing required field
	w = doJSON(t, engine, http.MethodPost, "/api/v1/clients", gin.H{"name": "No Phone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed id resolves to not found
	w = doJSON(t, engine, http.MethodGet, "/api/v1/clients/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/clients/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, engine, http.MethodGet, "/api/v1/clients/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoicePaymentFlowOverHTTP(t *testing.T) {
	engine := newTestServer(t)
	clientID := createClient(t, engine)
	orderID := createOrder(t, engine, clientID, "100.00")

	// Invoice the order
	w := doJSON(t, engine, http.MethodPost, "/api/v1/invoices", gin.H{
		"order_id": orderID,
		"due_date": time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	invoice := dataField(t, w)
	invoiceID := invoice["id"].(string)
	assert.Equal(t, "Draft", invoice["status"])

	// A partial payment flips the status
	w = doJSON(t, engine, http.MethodPost, "/api/v1/payments", gin.H{
		"invoice_id": invoiceID,
		"amount":     "40.00",
		"method":     "Cash",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Partial", dataField(t, w)["status"])

	// Completing the total marks it paid
	w = doJSON(t, engine, http.MethodPost, "/api/v1/payments", gin.H{
		"invoice_id": invoiceID,
		"amount":     "60.00",
		"method":     "Bank Transfer",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Paid", dataField(t, w)["status"])

	// Deleting the invoice cascades to its payments
	w = doJSON(t, engine, http.MethodDelete, "/api/v1/invoices/"+invoiceID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/payments?invoice_id=%s", invoiceID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Data)
}

func TestInvoiceUnpricedOrderRejected(t *testing.T) {
	engine := newTestServer(t)
	clientID := createClient(t, engine)
	orderID := createOrder(t, engine, clientID, "")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/invoices", gin.H{
		"order_id": orderID,
		"due_date": time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INVALID_STATE", errorCode(t, w))
}

func TestInvalidPaymentMethodRejected(t *testing.T) {
	engine := newTestServer(t)
	clientID := createClient(t, engine)
	orderID := createOrder(t, engine, clientID, "100.00")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/invoices", gin.H{
		"order_id": orderID,
		"due_date": time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	invoiceID := dataField(t, w)["id"].(string)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/payments", gin.H{
		"invoice_id": invoiceID,
		"amount":     "10.00",
		"method":     "Barter",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_PAYMENT_METHOD", errorCode(t, w))
}

func TestSettingsEndpoints(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "system_default", dataField(t, w)["theme"])

	w = doJSON(t, engine, http.MethodPut, "/api/v1/settings", gin.H{
		"theme":                "dark",
		"sync_frequency_hours": 24,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataField(t, w)
	assert.Equal(t, "dark", updated["theme"])
	assert.Equal(t, float64(24), updated["sync_frequency_hours"])

	// Explicit null clears the schedule without touching other fields
	w = doJSON(t, engine, http.MethodPut, "/api/v1/settings", gin.H{
		"sync_frequency_hours": nil,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated = dataField(t, w)
	assert.Equal(t, "dark", updated["theme"])
	assert.Nil(t, updated["sync_frequency_hours"])

	w = doJSON(t, engine, http.MethodPut, "/api/v1/settings", gin.H{"theme": "neon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_THEME", errorCode(t, w))

	w = doJSON(t, engine, http.MethodPost, "/api/v1/settings/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "system_default", dataField(t, w)["theme"])
}
