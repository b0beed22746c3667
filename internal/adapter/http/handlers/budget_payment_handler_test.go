package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ongeo_api/internal/adapter/http/handlers/mocks"
	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func paymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIBudgetPaymentUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
	h := NewBudgetPaymentHandler(uc)

	r := newTestRouter()
	r.POST("/api/budgets/:id/payments", h.CreatePayment)
	r.GET("/api/budgets/:id/payments", h.ListPayments)
	r.GET("/api/payments/:id", h.GetPayment)
	return r, uc
}

func TestBudgetPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := paymentRouter(t)
		w := doRequest(r, http.MethodPost, "/api/budgets/b-1/payments", `{"payment_method_id":`)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("null envelope", func(t *testing.T) {
		r, _ := paymentRouter(t)
		w := doRequest(r, http.MethodPost, "/api/budgets/b-1/payments", `{"mp_payload":null}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("body read failure", func(t *testing.T) {
		r, _ := paymentRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/budgets/b-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		r, uc := paymentRouter(t)
		uc.EXPECT().CreateAndApprove(gomock.Any(), testOwner, "b-1", gomock.Any()).Return(entities.BudgetPayment{}, usecase.ErrBudgetNotApproved)

		w := doRequest(r, http.MethodPost, "/api/budgets/b-1/payments", `{"payment_method_id":"pix"}`)
		expectError(t, w, http.StatusConflict, "BUDGET_NOT_APPROVED")
	})

	t.Run("gateway not configured", func(t *testing.T) {
		r, uc := paymentRouter(t)
		uc.EXPECT().CreateAndApprove(gomock.Any(), testOwner, "b-1", gomock.Any()).Return(entities.BudgetPayment{}, usecase.ErrPaymentGatewayNotConfigured)

		w := doRequest(r, http.MethodPost, "/api/budgets/b-1/payments", "")
		expectError(t, w, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_UNAVAILABLE")
	})

	t.Run("envelope is unwrapped", func(t *testing.T) {
		r, uc := paymentRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), testOwner, "b-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, payload json.RawMessage) (entities.BudgetPayment, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.BudgetPayment{ID: "pay-1", BudgetID: "b-1", Amount: 1500, Date: now, Status: entities.PaymentStatusAprovado}, nil
			})

		w := doRequest(r, http.MethodPost, "/api/budgets/b-1/payments", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["payment_id"] != "pay-1" || body["status"] != "aprovado" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBudgetPaymentHandler_ListAndGet(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, uc := paymentRouter(t)
		uc.EXPECT().ListByBudgetID(gomock.Any(), testOwner, "b-1").Return([]entities.BudgetPayment{{ID: "p1"}, {ID: "p2"}}, nil)

		w := doRequest(r, http.MethodGet, "/api/budgets/b-1/payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if list, _ := decodeBody(t, w)["payments"].([]any); len(list) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get missing", func(t *testing.T) {
		r, uc := paymentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), testOwner, "p1").Return(entities.BudgetPayment{}, usecase.ErrBudgetPaymentNotFound)

		w := doRequest(r, http.MethodGet, "/api/payments/p1", "")
		expectError(t, w, http.StatusNotFound, "PAYMENT_NOT_FOUND")
	})
}
