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

func formLinkRouter(t *testing.T) (*gin.Engine, *mocks.MockIFormLinkUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFormLinkUseCase(ctrl)
	h := NewFormLinkHandler(uc)

	r := newTestRouter()
	r.POST("/api/form-link", h.Create)
	r.GET("/api/form-link", h.GetMine)
	r.PUT("/api/form-link", h.Update)
	r.PATCH("/api/form-link/active", h.SetActive)
	r.GET("/api/form-links/:slug", h.Resolve)
	r.POST("/api/public-budget-request", h.SubmitPublicRequest)
	return r, uc
}

func TestFormLinkHandler_Create(t *testing.T) {
	t.Run("second link", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().Create(gomock.Any(), testOwner, gomock.Any()).Return(entities.BudgetFormLink{}, usecase.ErrFormLinkAlreadyExists)

		w := doRequest(r, http.MethodPost, "/api/form-link", `{"title":"Orçamentos"}`)
		expectError(t, w, http.StatusConflict, "FORM_LINK_ALREADY_EXISTS")
	})

	t.Run("slug taken", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().Create(gomock.Any(), testOwner, gomock.Any()).Return(entities.BudgetFormLink{}, usecase.ErrFormLinkSlugTaken)

		w := doRequest(r, http.MethodPost, "/api/form-link", `{"slug":"geo"}`)
		expectError(t, w, http.StatusConflict, "FORM_LINK_SLUG_TAKEN")
	})

	t.Run("success", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().Create(gomock.Any(), testOwner, gomock.Any()).Return(entities.BudgetFormLink{ID: "fl-1", Slug: "geo", IsActive: true}, nil)

		w := doRequest(r, http.MethodPost, "/api/form-link", `{"slug":"geo"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestFormLinkHandler_SetActive(t *testing.T) {
	t.Run("flag is required", func(t *testing.T) {
		r, _ := formLinkRouter(t)
		w := doRequest(r, http.MethodPatch, "/api/form-link/active", `{}`)
		expectError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
		fields, _ := decodeBody(t, w)["fields"].(map[string]any)
		if fields["is_active"] != "required" {
			t.Fatalf("unexpected fields: %s", w.Body.String())
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().SetActive(gomock.Any(), testOwner, false).Return(entities.BudgetFormLink{ID: "fl-1"}, nil)

		w := doRequest(r, http.MethodPatch, "/api/form-link/active", `{"is_active":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("no link yet", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().GetMine(gomock.Any(), testOwner).Return(entities.BudgetFormLink{}, usecase.ErrFormLinkNotFound)

		w := doRequest(r, http.MethodGet, "/api/form-link", "")
		expectError(t, w, http.StatusNotFound, "FORM_LINK_NOT_FOUND")
	})
}

func TestFormLinkHandler_Resolve(t *testing.T) {
	t.Run("inactive looks missing", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().ResolveBySlug(gomock.Any(), "geo").Return(entities.BudgetFormLink{}, usecase.ErrFormLinkInactive)

		w := doRequest(r, http.MethodGet, "/api/form-links/geo", "")
		expectError(t, w, http.StatusNotFound, "FORM_LINK_NOT_FOUND")
	})

	t.Run("public fields only", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().ResolveBySlug(gomock.Any(), "geo").Return(entities.BudgetFormLink{
			ID: "fl-1", UserID: "user-9", Slug: "geo", Title: "Orçamentos", IsActive: true, ViewsCount: 7,
		}, nil)

		w := doRequest(r, http.MethodGet, "/api/form-links/geo", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		link, _ := decodeBody(t, w)["form_link"].(map[string]any)
		if link["primary_color"] != entities.DefaultPrimaryColor {
			t.Fatalf("expected default color: %s", w.Body.String())
		}
		if _, ok := link["user_id"]; ok {
			t.Fatalf("owner leaked: %s", w.Body.String())
		}
		if _, ok := link["views_count"]; ok {
			t.Fatalf("counters leaked: %s", w.Body.String())
		}
	})
}

func TestFormLinkHandler_SubmitPublicRequest(t *testing.T) {
	t.Run("slug is required", func(t *testing.T) {
		r, _ := formLinkRouter(t)

		w := doRequest(r, http.MethodPost, "/api/public-budget-request", `{"client_name":"Ana"}`)
		expectError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
		fields, _ := decodeBody(t, w)["fields"].(map[string]any)
		if fields["slug"] != "required" {
			t.Fatalf("unexpected fields: %s", w.Body.String())
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().SubmitPublicRequest(gomock.Any(), "nope", gomock.Any()).Return(entities.Budget{}, usecase.ErrFormLinkNotFound)

		w := doRequest(r, http.MethodPost, "/api/public-budget-request", `{"slug":"nope"}`)
		expectError(t, w, http.StatusNotFound, "FORM_LINK_NOT_FOUND")
	})

	t.Run("success returns the custom link", func(t *testing.T) {
		r, uc := formLinkRouter(t)
		uc.EXPECT().SubmitPublicRequest(gomock.Any(), "geo", gomock.Any()).DoAndReturn(
			func(_ any, _ string, req entities.BudgetRequest) (entities.Budget, error) {
				if req.ClientName != "Ana" || req.VerticesCount != 8 {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.Budget{ID: "b-1", CustomLink: "orcamento-abc"}, nil
			})

		w := doRequest(r, http.MethodPost, "/api/public-budget-request", `{"slug":"geo","client_name":"Ana","vertices_count":"8"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		data, _ := decodeBody(t, w)["data"].(map[string]any)
		if data["custom_link"] != "orcamento-abc" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
