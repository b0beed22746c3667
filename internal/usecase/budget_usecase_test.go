package usecase

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/domain/pricing"
	"ongeo_api/internal/usecase/interfaces"
	mock_interfaces "ongeo_api/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

type budgetMocks struct {
	repo        *mock_interfaces.MockIBudgetRepository
	items       *mock_interfaces.MockIBudgetItemRepository
	clients     *mock_interfaces.MockIClientRepository
	calculator  *mock_interfaces.MockIPriceCalculator
	idempotency *mock_interfaces.MockIIdempotencyRepository
}

func newBudgetUseCase(t *testing.T) (*BudgetUseCase, budgetMocks) {
	ctrl := gomock.NewController(t)
	m := budgetMocks{
		repo:        mock_interfaces.NewMockIBudgetRepository(ctrl),
		items:       mock_interfaces.NewMockIBudgetItemRepository(ctrl),
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
		calculator:  mock_interfaces.NewMockIPriceCalculator(ctrl),
		idempotency: mock_interfaces.NewMockIIdempotencyRepository(ctrl),
	}
	uc := NewBudgetUseCase(m.repo, m.items, m.clients, m.calculator, m.idempotency, time.Hour)
	uc.now = func() time.Time { return fixedNow }
	seq := 0
	uc.newID = func() string {
		seq++
		return "id-" + strconv.Itoa(seq)
	}
	return uc, m
}

func mariaRequest() entities.BudgetRequest {
	return entities.BudgetRequest{
		ClientName:    "Maria Souza",
		ClientEmail:   " Maria@Example.com ",
		PropertyName:  "Fazenda Boa Vista",
		State:         "mg",
		City:          "Uberlândia",
		VerticesCount: 10,
		PropertyArea:  50,
		IsUrgent:      true,
	}
}

func mariaResult() entities.BudgetResult {
	return entities.BudgetResult{
		TotalPrice: entities.AmountPtr(1900),
		Breakdown: []entities.BreakdownLine{
			{Item: "Base", Value: 1600},
			{Item: "Urgência", Value: 300},
		},
		EstimatedDays: 15,
	}
}

func echoCreate(_ context.Context, c interfaces.BudgetCreation) (entities.Budget, error) {
	return c.Budget, nil
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("invalid owner", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil, nil, 0)
		_, err := uc.Create(context.Background(), " ", CreateBudgetInput{Request: mariaRequest()})
		if !errors.Is(err, ErrInvalidOwner) {
			t.Fatalf("expected ErrInvalidOwner, got %v", err)
		}
	})

	t.Run("validation happens before the calculator", func(t *testing.T) {
		uc, _ := newBudgetUseCase(t)
		req := mariaRequest()
		req.VerticesCount = 0
		req.ClientEmail = "not-an-email"
		req.City = ""

		_, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: req})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{
			"vertices_count": codeMustBePositive,
			"client_email":   codeInvalid,
			"city":           codeRequired,
		}, verr.Fields)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("new client is created with the first budget", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.BudgetRequest) (entities.BudgetResult, error) {
				assert.Equal(t, "maria@example.com", req.ClientEmail)
				assert.Equal(t, "MG", req.State)
				assert.Equal(t, entities.ClientTypePessoaFisica, req.ClientType)
				return mariaResult(), nil
			})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.BudgetCreation) (entities.Budget, error) {
				require.NotNil(t, c.NewClient)
				assert.Empty(t, c.ExistingClientID)
				assert.Equal(t, 1, c.NewClient.TotalBudgets)
				assert.Equal(t, 1900.0, c.NewClient.TotalSpent)
				assert.Equal(t, "owner-1", c.NewClient.UserID)
				assert.Equal(t, c.NewClient.ID, c.Budget.ClientID)
				return c.Budget, nil
			})

		b, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest()})
		require.NoError(t, err)
		assert.Equal(t, entities.BudgetStatusActive, b.Status)
		assert.Regexp(t, regexp.MustCompile(`^orcamento-\d+$`), b.CustomLink)
		assert.Equal(t, "owner-1", b.UserID)
		assert.Equal(t, 1900.0, b.Total.Float64())
		assert.Equal(t, 1900.0, b.TotalPrice.Float64())
		assert.Equal(t, fixedNow, b.CreatedAt)

		display := pricing.DisplayTotal(b, nil, nil)
		assert.Equal(t, "R$ 1.900,00", display.Formatted())
	})

	t.Run("existing client gets counters bumped", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "client-9").Return(entities.Client{ID: "client-9", UserID: "owner-1", IsActive: true}, nil)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(mariaResult(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.BudgetCreation) (entities.Budget, error) {
				assert.Nil(t, c.NewClient)
				assert.Equal(t, "client-9", c.ExistingClientID)
				assert.Equal(t, "client-9", c.Budget.ClientID)
				return c.Budget, nil
			})

		_, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest(), ClientID: "client-9"})
		require.NoError(t, err)
	})

	t.Run("client of another owner", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "client-9").Return(entities.Client{ID: "client-9", UserID: "owner-2", IsActive: true}, nil)

		_, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest(), ClientID: "client-9"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("calculator failure writes nothing", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		calcErr := &interfaces.CalculatorError{Message: "Estado não atendido", StatusCode: 422}
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(entities.BudgetResult{}, calcErr)

		_, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest()})
		var got *interfaces.CalculatorError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, "Estado não atendido", got.Message)
	})

	t.Run("custom link collision gets a suffix", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(mariaResult(), nil)
		base := entities.DefaultCustomLink(fixedNow)
		gomock.InOrder(
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, &interfaces.UniqueConflictError{Scope: interfaces.ScopeBudgetLink, Value: base}),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, &interfaces.UniqueConflictError{Scope: interfaces.ScopeBudgetLink, Value: base + "-2"}),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate),
		)

		b, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest()})
		require.NoError(t, err)
		assert.Equal(t, base+"-3", b.CustomLink)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(mariaResult(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Budget{}, &interfaces.UniqueConflictError{Scope: interfaces.ScopeBudgetLink}).
			Times(maxLinkAttempts)

		_, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest()})
		assert.ErrorIs(t, err, interfaces.ErrUniqueConflict)
	})

	t.Run("idempotency key completes after create", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.idempotency.EXPECT().Reserve(gomock.Any(), "owner-1", "key-1", time.Hour).Return(interfaces.IdempotencyRecord{Reserved: true}, nil)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(mariaResult(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)
		m.idempotency.EXPECT().Complete(gomock.Any(), "owner-1", "key-1", gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest(), IdempotencyKey: "key-1"})
		require.NoError(t, err)
	})

	t.Run("idempotency key released on failure", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.idempotency.EXPECT().Reserve(gomock.Any(), "owner-1", "key-1", time.Hour).Return(interfaces.IdempotencyRecord{Reserved: true}, nil)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(entities.BudgetResult{}, errors.New("timeout"))
		m.idempotency.EXPECT().Release(gomock.Any(), "owner-1", "key-1").Return(nil)

		_, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest(), IdempotencyKey: "key-1"})
		require.Error(t, err)
	})

	t.Run("replayed idempotency key returns the stored budget", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.idempotency.EXPECT().Reserve(gomock.Any(), "owner-1", "key-1", time.Hour).Return(interfaces.IdempotencyRecord{BudgetID: "b-1"}, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", UserID: "owner-1"}, nil)

		b, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest(), IdempotencyKey: "key-1"})
		require.NoError(t, err)
		assert.Equal(t, "b-1", b.ID)
	})

	t.Run("idempotency key still running", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.idempotency.EXPECT().Reserve(gomock.Any(), "owner-1", "key-1", time.Hour).Return(interfaces.IdempotencyRecord{}, nil)

		_, err := uc.Create(context.Background(), "owner-1", CreateBudgetInput{Request: mariaRequest(), IdempotencyKey: "key-1"})
		if !errors.Is(err, ErrRequestInFlight) {
			t.Fatalf("expected ErrRequestInFlight, got %v", err)
		}
	})
}

func TestBudgetUseCase_CreateFromFormLink(t *testing.T) {
	link := entities.BudgetFormLink{ID: "form-1", UserID: "owner-1", Slug: "geo-silva", IsActive: true}

	t.Run("reuses client with the same email", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.clients.EXPECT().FindByEmail(gomock.Any(), "owner-1", "maria@example.com").Return(entities.Client{ID: "client-1", UserID: "owner-1", IsActive: true}, nil)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(mariaResult(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.BudgetCreation) (entities.Budget, error) {
				assert.Equal(t, "client-1", c.ExistingClientID)
				assert.Equal(t, "form-1", c.Budget.FormLinkID)
				assert.Equal(t, "owner-1", c.Budget.UserID)
				return c.Budget, nil
			})

		_, err := uc.CreateFromFormLink(context.Background(), link, mariaRequest())
		require.NoError(t, err)
	})

	t.Run("creates a client when none matches", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.clients.EXPECT().FindByEmail(gomock.Any(), "owner-1", "maria@example.com").Return(entities.Client{}, nil)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(mariaResult(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.BudgetCreation) (entities.Budget, error) {
				require.NotNil(t, c.NewClient)
				return c.Budget, nil
			})

		_, err := uc.CreateFromFormLink(context.Background(), link, mariaRequest())
		require.NoError(t, err)
	})
}

func TestBudgetUseCase_GetAndList(t *testing.T) {
	t.Run("other owner's budget is not found", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", UserID: "owner-2"}, nil)

		_, err := uc.Get(context.Background(), "owner-1", "b-1")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("missing budget", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.Get(context.Background(), "owner-1", "b-1")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("list filters by status", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().ListByUserID(gomock.Any(), "owner-1").Return([]entities.Budget{
			{ID: "b-1", Status: entities.BudgetStatusActive},
			{ID: "b-2", Status: entities.BudgetStatusApproved},
			{ID: "b-3", Status: entities.BudgetStatusActive},
		}, nil)

		out, err := uc.List(context.Background(), "owner-1", entities.BudgetStatusActive)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "b-1", out[0].ID)
		assert.Equal(t, "b-3", out[1].ID)
	})

	t.Run("list rejects unknown status", func(t *testing.T) {
		uc, _ := newBudgetUseCase(t)
		_, err := uc.List(context.Background(), "owner-1", "archived")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestBudgetUseCase_Edit(t *testing.T) {
	uc, m := newBudgetUseCase(t)
	m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", UserID: "owner-1"}, nil)
	m.repo.EXPECT().UpdateRequest(gomock.Any(), "b-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, req entities.BudgetRequest) (entities.Budget, error) {
			assert.Equal(t, "MG", req.State)
			return entities.Budget{ID: id, UserID: "owner-1", Request: req}, nil
		})

	b, err := uc.Edit(context.Background(), "owner-1", "b-1", mariaRequest())
	require.NoError(t, err)
	assert.Equal(t, "Fazenda Boa Vista", b.Request.PropertyName)
}

func TestBudgetUseCase_SetCustomLink(t *testing.T) {
	owned := entities.Budget{ID: "b-1", UserID: "owner-1", CustomLink: "orcamento-1"}

	t.Run("invalid slug", func(t *testing.T) {
		uc, _ := newBudgetUseCase(t)
		for _, link := range []string{"", "ab", "Fazenda Boa Vista", "fazenda--x", "-x-"} {
			_, err := uc.SetCustomLink(context.Background(), "owner-1", "b-1", link)
			if !errors.Is(err, ErrInvalidCustomLink) {
				t.Fatalf("%q: expected ErrInvalidCustomLink, got %v", link, err)
			}
		}
	})

	t.Run("same link is a no-op", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(owned, nil)

		b, err := uc.SetCustomLink(context.Background(), "owner-1", "b-1", "Orcamento-1")
		require.NoError(t, err)
		assert.Equal(t, "orcamento-1", b.CustomLink)
	})

	t.Run("taken link is rejected", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(owned, nil)
		m.repo.EXPECT().UpdateCustomLink(gomock.Any(), "b-1", "orcamento-1", "fazenda-boa-vista").
			Return(entities.Budget{}, &interfaces.UniqueConflictError{Scope: interfaces.ScopeBudgetLink})

		_, err := uc.SetCustomLink(context.Background(), "owner-1", "b-1", "fazenda-boa-vista")
		if !errors.Is(err, ErrCustomLinkTaken) {
			t.Fatalf("expected ErrCustomLinkTaken, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(owned, nil)
		m.repo.EXPECT().UpdateCustomLink(gomock.Any(), "b-1", "orcamento-1", "fazenda-boa-vista").
			Return(entities.Budget{ID: "b-1", CustomLink: "fazenda-boa-vista"}, nil)

		b, err := uc.SetCustomLink(context.Background(), "owner-1", "b-1", " fazenda-boa-vista ")
		require.NoError(t, err)
		assert.Equal(t, "fazenda-boa-vista", b.CustomLink)
	})
}

func TestBudgetUseCase_Delete(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		uc, _ := newBudgetUseCase(t)
		err := uc.Delete(context.Background(), "owner-1", "b-1", false)
		if !errors.Is(err, ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
	})

	t.Run("deletes budget then items", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		b := entities.Budget{ID: "b-1", UserID: "owner-1", ClientID: "c-1"}
		m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		gomock.InOrder(
			m.repo.EXPECT().Delete(gomock.Any(), b).Return(nil),
			m.items.EXPECT().DeleteByBudgetID(gomock.Any(), "b-1").Return(nil),
		)

		require.NoError(t, uc.Delete(context.Background(), "owner-1", "b-1", true))
	})

	t.Run("repository error stops before items", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", UserID: "owner-1"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		err := uc.Delete(context.Background(), "owner-1", "b-1", true)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBudgetUseCase_Totals(t *testing.T) {
	uc, m := newBudgetUseCase(t)
	b := entities.Budget{ID: "b-1", UserID: "owner-1", Result: mariaResult()}
	items := []entities.BudgetItem{
		{ItemType: entities.ItemTypeInsumo, Quantity: 2, UnitPrice: 100, TotalPrice: 200},
		{ItemType: entities.ItemTypeDeslocamento, Quantity: 3, UnitPrice: 100, TotalPrice: 300},
	}
	m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
	m.items.EXPECT().ListByBudgetID(gomock.Any(), "b-1").Return(items, nil)

	additional := []entities.AdditionalItem{{Description: "Taxa cartório", Quantity: 1, UnitPrice: 25, TotalPrice: 999}}
	totals, err := uc.Totals(context.Background(), "owner-1", "b-1", additional)
	require.NoError(t, err)

	assert.Equal(t, pricing.ProvenanceCalculated, totals.Display.Provenance)
	assert.True(t, totals.Display.Amount.Equal(decimal.NewFromInt(1925)), totals.Display.Amount.String())
	assert.True(t, totals.ItemsTotal.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.AdditionalTotal.Equal(decimal.NewFromInt(25)))
	assert.Len(t, totals.Groups, 2)
}

func TestBudgetUseCase_PublicDecisions(t *testing.T) {
	cases := []struct {
		name string
		call func(uc *BudgetUseCase) (entities.Budget, error)
		to   entities.BudgetStatus
	}{
		{name: "approve", to: entities.BudgetStatusApproved, call: func(uc *BudgetUseCase) (entities.Budget, error) {
			return uc.Approve(context.Background(), "orcamento-1")
		}},
		{name: "reject", to: entities.BudgetStatusRejected, call: func(uc *BudgetUseCase) (entities.Budget, error) {
			return uc.Reject(context.Background(), "orcamento-1", " área errada ")
		}},
	}

	for _, tc := range cases {
		for _, from := range []entities.BudgetStatus{entities.BudgetStatusActive, entities.BudgetStatusResubmitted} {
			t.Run(tc.name+" from "+string(from), func(t *testing.T) {
				uc, m := newBudgetUseCase(t)
				m.repo.EXPECT().GetByCustomLink(gomock.Any(), "orcamento-1").Return(entities.Budget{ID: "b-1", Status: from}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, change interfaces.StatusChange) (entities.Budget, error) {
						assert.Equal(t, tc.to, change.To)
						assert.Equal(t, fixedNow, change.At)
						assert.ElementsMatch(t, decidableStatuses, change.From)
						if tc.to == entities.BudgetStatusRejected {
							assert.Equal(t, "área errada", change.RejectionComment)
						}
						return entities.Budget{ID: "b-1", Status: change.To}, nil
					})

				b, err := tc.call(uc)
				require.NoError(t, err)
				assert.Equal(t, tc.to, b.Status)
			})
		}

		for _, from := range []entities.BudgetStatus{entities.BudgetStatusApproved, entities.BudgetStatusRejected} {
			t.Run(tc.name+" from "+string(from)+" is refused", func(t *testing.T) {
				uc, m := newBudgetUseCase(t)
				m.repo.EXPECT().GetByCustomLink(gomock.Any(), "orcamento-1").Return(entities.Budget{ID: "b-1", Status: from}, nil)

				_, err := tc.call(uc)
				if !errors.Is(err, ErrInvalidStatusTransition) {
					t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
				}
			})
		}

		t.Run(tc.name+" lost race", func(t *testing.T) {
			uc, m := newBudgetUseCase(t)
			m.repo.EXPECT().GetByCustomLink(gomock.Any(), "orcamento-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusActive}, nil)
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", gomock.Any()).Return(entities.Budget{}, interfaces.ErrPreconditionFailed)

			_, err := tc.call(uc)
			if !errors.Is(err, ErrInvalidStatusTransition) {
				t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
			}
		})
	}

	t.Run("draft is not public", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().GetByCustomLink(gomock.Any(), "orcamento-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusDraft}, nil)

		_, err := uc.GetByCustomLink(context.Background(), "orcamento-1")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetUseCase_Resubmit(t *testing.T) {
	t.Run("only rejected budgets", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.repo.EXPECT().GetByCustomLink(gomock.Any(), "orcamento-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusActive}, nil)

		_, err := uc.Resubmit(context.Background(), "orcamento-1", mariaRequest())
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("reprices and stores", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		current := entities.Budget{ID: "b-1", Status: entities.BudgetStatusRejected, RejectionComment: "caro"}
		m.repo.EXPECT().GetByCustomLink(gomock.Any(), "orcamento-1").Return(current, nil)
		m.calculator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(mariaResult(), nil)
		m.repo.EXPECT().ApplyResubmission(gomock.Any(), current, gomock.Any(), mariaResult(), fixedNow).
			Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusResubmitted}, nil)

		b, err := uc.Resubmit(context.Background(), "orcamento-1", mariaRequest())
		require.NoError(t, err)
		assert.Equal(t, entities.BudgetStatusResubmitted, b.Status)
	})
}
