package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ongeo_api/internal/domain/entities"
	mock_interfaces "ongeo_api/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newClientUseCase(t *testing.T) (*ClientUseCase, *mock_interfaces.MockIClientRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "client-1" }
	return uc, repo
}

func TestClientUseCase_Create(t *testing.T) {
	t.Run("invalid owner", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), "", ClientInput{Name: "x", Email: "x@y.com"})
		if !errors.Is(err, ErrInvalidOwner) {
			t.Fatalf("expected ErrInvalidOwner, got %v", err)
		}
	})

	t.Run("name and email required", func(t *testing.T) {
		uc, _ := newClientUseCase(t)
		_, err := uc.Create(context.Background(), "owner-1", ClientInput{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, codeRequired, verr.Fields["name"])
		assert.Equal(t, codeRequired, verr.Fields["email"])
	})

	t.Run("defaults", func(t *testing.T) {
		uc, repo := newClientUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				return c, nil
			})

		c, err := uc.Create(context.Background(), "owner-1", ClientInput{
			Name:    " Agro Serra Ltda ",
			Email:   "Contato@AgroSerra.com.br",
			Address: entities.Address{City: "Patos de Minas", State: "mg"},
		})
		require.NoError(t, err)
		assert.Equal(t, "client-1", c.ID)
		assert.Equal(t, "owner-1", c.UserID)
		assert.Equal(t, "Agro Serra Ltda", c.Name)
		assert.Equal(t, "contato@agroserra.com.br", c.Email)
		assert.Equal(t, entities.ClientTypePessoaFisica, c.ClientType)
		assert.Equal(t, "MG", c.Address.State)
		assert.Equal(t, "Brasil", c.Address.Country)
		assert.True(t, c.IsActive)
		assert.Zero(t, c.TotalBudgets)
		assert.Zero(t, c.TotalSpent)
	})
}

func TestClientUseCase_Get(t *testing.T) {
	uc, repo := newClientUseCase(t)
	repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", UserID: "owner-2"}, nil)

	_, err := uc.Get(context.Background(), "owner-1", "client-1")
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientUseCase_List(t *testing.T) {
	uc, repo := newClientUseCase(t)
	repo.EXPECT().ListByUserID(gomock.Any(), "owner-1", true).Return([]entities.Client{{ID: "c-1"}, {ID: "c-2"}}, nil)

	out, err := uc.List(context.Background(), "owner-1", true)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestClientUseCase_Update(t *testing.T) {
	uc, repo := newClientUseCase(t)
	stored := entities.Client{ID: "client-1", UserID: "owner-1", Name: "Old", Email: "old@x.com", IsActive: true, TotalBudgets: 3, TotalSpent: 4500}
	repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Client) (entities.Client, error) {
			return c, nil
		})

	c, err := uc.Update(context.Background(), "owner-1", "client-1", ClientInput{Name: "New", Email: "new@x.com", ClientType: entities.ClientTypePessoaJuridica})
	require.NoError(t, err)
	assert.Equal(t, "New", c.Name)
	assert.Equal(t, entities.ClientTypePessoaJuridica, c.ClientType)
	assert.Equal(t, 3, c.TotalBudgets)
	assert.Equal(t, 4500.0, c.TotalSpent)
	assert.Equal(t, fixedNow, c.UpdatedAt)
}

func TestClientUseCase_Deactivate(t *testing.T) {
	t.Run("active client", func(t *testing.T) {
		uc, repo := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", UserID: "owner-1", IsActive: true}, nil)
		repo.EXPECT().SetActive(gomock.Any(), "client-1", false).Return(entities.Client{ID: "client-1"}, nil)

		require.NoError(t, uc.Deactivate(context.Background(), "owner-1", "client-1"))
	})

	t.Run("already inactive", func(t *testing.T) {
		uc, repo := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", UserID: "owner-1"}, nil)

		require.NoError(t, uc.Deactivate(context.Background(), "owner-1", "client-1"))
	})
}
