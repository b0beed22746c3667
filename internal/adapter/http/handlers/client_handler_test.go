package handlers

import (
	"net/http"
	"testing"

	"ongeo_api/internal/adapter/http/handlers/mocks"
	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func clientRouter(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := newTestRouter()
	r.POST("/api/clients", h.Create)
	r.GET("/api/clients", h.List)
	r.GET("/api/clients/:id", h.Get)
	r.PUT("/api/clients/:id", h.Update)
	r.DELETE("/api/clients/:id", h.Delete)
	return r, uc
}

func TestClientHandler_Create(t *testing.T) {
	t.Run("name is required by binding", func(t *testing.T) {
		r, _ := clientRouter(t)

		w := doRequest(r, http.MethodPost, "/api/clients", `{"email":"a@b.com"}`)
		expectError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
		fields, _ := decodeBody(t, w)["fields"].(map[string]any)
		if fields["name"] != "required" {
			t.Fatalf("unexpected fields: %s", w.Body.String())
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		r, uc := clientRouter(t)
		uc.EXPECT().Create(gomock.Any(), testOwner, gomock.Any()).
			Return(entities.Client{}, &usecase.ValidationError{Fields: map[string]string{"email": "invalid"}})

		w := doRequest(r, http.MethodPost, "/api/clients", `{"name":"Ana","email":"ana"}`)
		expectError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("success", func(t *testing.T) {
		r, uc := clientRouter(t)
		uc.EXPECT().Create(gomock.Any(), testOwner, gomock.Any()).DoAndReturn(
			func(_ any, _ string, in usecase.ClientInput) (entities.Client, error) {
				if in.Name != "Ana" || in.Address.City != "Goiânia" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Client{ID: "cl-1", Name: in.Name, IsActive: true}, nil
			})

		w := doRequest(r, http.MethodPost, "/api/clients", `{"name":"Ana","email":"ana@example.com","address":{"city":"Goiânia"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestClientHandler_List(t *testing.T) {
	r, uc := clientRouter(t)
	uc.EXPECT().List(gomock.Any(), testOwner, true).Return([]entities.Client{{ID: "cl-1"}, {ID: "cl-2"}}, nil)

	w := doRequest(r, http.MethodGet, "/api/clients?include_inactive=true", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["count"] != 2.0 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestClientHandler_GetUpdateDelete(t *testing.T) {
	t.Run("get other owner's client", func(t *testing.T) {
		r, uc := clientRouter(t)
		uc.EXPECT().Get(gomock.Any(), testOwner, "cl-9").Return(entities.Client{}, usecase.ErrClientNotFound)

		w := doRequest(r, http.MethodGet, "/api/clients/cl-9", "")
		expectError(t, w, http.StatusNotFound, "CLIENT_NOT_FOUND")
	})

	t.Run("update invalid json", func(t *testing.T) {
		r, _ := clientRouter(t)
		w := doRequest(r, http.MethodPut, "/api/clients/cl-1", `{"name":`)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("delete deactivates", func(t *testing.T) {
		r, uc := clientRouter(t)
		uc.EXPECT().Deactivate(gomock.Any(), testOwner, "cl-1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/api/clients/cl-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
