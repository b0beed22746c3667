package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase/interfaces"
	mock_interfaces "ongeo_api/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeBudgetCreator struct {
	gotLink entities.BudgetFormLink
	budget  entities.Budget
	err     error
}

func (f *fakeBudgetCreator) CreateFromFormLink(_ context.Context, link entities.BudgetFormLink, _ entities.BudgetRequest) (entities.Budget, error) {
	f.gotLink = link
	return f.budget, f.err
}

func newFormLinkUseCase(t *testing.T, creator publicBudgetCreator) (*FormLinkUseCase, *mock_interfaces.MockIFormLinkRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIFormLinkRepository(ctrl)
	uc := NewFormLinkUseCase(repo, creator)
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "form-1" }
	return uc, repo
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Topografia São João":           "topografia-sao-joao",
		"  Geo & Cia — Agrimensura  ":   "geo-cia-agrimensura",
		"ÁGUA   Limpa":                  "agua-limpa",
		"---":                           "",
		"Levantamento Planialtimétrico": "levantamento-planialtimetrico",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestFormLinkUseCase_Create(t *testing.T) {
	t.Run("one per user", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(entities.BudgetFormLink{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), "owner-1", FormLinkInput{Title: "Geo Silva"})
		if !errors.Is(err, ErrFormLinkAlreadyExists) {
			t.Fatalf("expected ErrFormLinkAlreadyExists, got %v", err)
		}
	})

	t.Run("concurrent second create loses on the user guard", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(entities.BudgetFormLink{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BudgetFormLink{}, &interfaces.UniqueConflictError{Scope: interfaces.ScopeFormLinkUser})

		_, err := uc.Create(context.Background(), "owner-1", FormLinkInput{Title: "Geo Silva"})
		if !errors.Is(err, ErrFormLinkAlreadyExists) {
			t.Fatalf("expected ErrFormLinkAlreadyExists, got %v", err)
		}
	})

	t.Run("slug from title with defaults", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(entities.BudgetFormLink{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.BudgetFormLink) (entities.BudgetFormLink, error) {
				return l, nil
			})

		l, err := uc.Create(context.Background(), "owner-1", FormLinkInput{Title: "Topografia São João"})
		require.NoError(t, err)
		assert.Equal(t, "topografia-sao-joao", l.Slug)
		assert.Equal(t, entities.DefaultPrimaryColor, l.PrimaryColor)
		assert.True(t, l.IsActive)
		assert.Zero(t, l.ViewsCount)
	})

	t.Run("slug collision gets a timestamp suffix", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(entities.BudgetFormLink{}, nil)
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BudgetFormLink{}, &interfaces.UniqueConflictError{Scope: interfaces.ScopeFormLinkSlug}),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, l entities.BudgetFormLink) (entities.BudgetFormLink, error) {
					return l, nil
				}),
		)

		l, err := uc.Create(context.Background(), "owner-1", FormLinkInput{Title: "Geo Silva"})
		require.NoError(t, err)
		assert.Equal(t, "geo-silva-"+strconv.FormatInt(fixedNow.UnixMilli(), 10), l.Slug)
	})

	t.Run("short title falls back to a generated slug", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(entities.BudgetFormLink{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.BudgetFormLink) (entities.BudgetFormLink, error) {
				return l, nil
			})

		l, err := uc.Create(context.Background(), "owner-1", FormLinkInput{Title: "GE"})
		require.NoError(t, err)
		assert.Equal(t, "formulario-form1", l.Slug)
		assert.True(t, validSlug(l.Slug))
	})

	t.Run("an explicit short slug is still rejected", func(t *testing.T) {
		uc, _ := newFormLinkUseCase(t, nil)
		_, err := uc.Create(context.Background(), "owner-1", FormLinkInput{Title: "GE", Slug: "ge"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, codeInvalid, verr.Fields["slug"])
	})

	t.Run("suffixed slug of a long title stays valid", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(entities.BudgetFormLink{}, nil)
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BudgetFormLink{}, &interfaces.UniqueConflictError{Scope: interfaces.ScopeFormLinkSlug}),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, l entities.BudgetFormLink) (entities.BudgetFormLink, error) {
					return l, nil
				}),
		)

		l, err := uc.Create(context.Background(), "owner-1", FormLinkInput{Title: strings.Repeat("a", 120)})
		require.NoError(t, err)
		suffix := "-" + strconv.FormatInt(fixedNow.UnixMilli(), 10)
		assert.Len(t, l.Slug, maxSlugLen)
		assert.True(t, strings.HasSuffix(l.Slug, suffix), l.Slug)
		assert.True(t, validSlug(l.Slug), l.Slug)
	})

	t.Run("invalid color", func(t *testing.T) {
		uc, _ := newFormLinkUseCase(t, nil)
		_, err := uc.Create(context.Background(), "owner-1", FormLinkInput{Title: "Geo Silva", PrimaryColor: "blue"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, codeInvalid, verr.Fields["primary_color"])
	})
}

func TestFormLinkUseCase_Update(t *testing.T) {
	current := entities.BudgetFormLink{ID: "form-1", UserID: "owner-1", Slug: "geo-silva", Title: "Geo Silva", PrimaryColor: "#000000", IsActive: true}

	t.Run("taken slug", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), "geo-silva").Return(entities.BudgetFormLink{}, &interfaces.UniqueConflictError{Scope: interfaces.ScopeFormLinkSlug})

		_, err := uc.Update(context.Background(), "owner-1", FormLinkInput{Slug: "geo-souza", Title: "Geo"})
		if !errors.Is(err, ErrFormLinkSlugTaken) {
			t.Fatalf("expected ErrFormLinkSlugTaken, got %v", err)
		}
	})

	t.Run("keeps slug when blank", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), "geo-silva").DoAndReturn(
			func(_ context.Context, l entities.BudgetFormLink, _ string) (entities.BudgetFormLink, error) {
				return l, nil
			})

		l, err := uc.Update(context.Background(), "owner-1", FormLinkInput{Title: "Geo Silva Agrimensura"})
		require.NoError(t, err)
		assert.Equal(t, "geo-silva", l.Slug)
		assert.Equal(t, "Geo Silva Agrimensura", l.Title)
	})
}

func TestFormLinkUseCase_SetActive(t *testing.T) {
	uc, repo := newFormLinkUseCase(t, nil)
	repo.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(entities.BudgetFormLink{ID: "form-1", IsActive: true}, nil)
	repo.EXPECT().SetActive(gomock.Any(), "form-1", false).Return(entities.BudgetFormLink{ID: "form-1"}, nil)

	l, err := uc.SetActive(context.Background(), "owner-1", false)
	require.NoError(t, err)
	assert.False(t, l.IsActive)
}

func TestFormLinkUseCase_ResolveBySlug(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetBySlug(gomock.Any(), "geo-silva").Return(entities.BudgetFormLink{}, nil)

		_, err := uc.ResolveBySlug(context.Background(), "geo-silva")
		if !errors.Is(err, ErrFormLinkNotFound) {
			t.Fatalf("expected ErrFormLinkNotFound, got %v", err)
		}
	})

	t.Run("inactive", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetBySlug(gomock.Any(), "geo-silva").Return(entities.BudgetFormLink{ID: "form-1"}, nil)

		_, err := uc.ResolveBySlug(context.Background(), "geo-silva")
		if !errors.Is(err, ErrFormLinkInactive) {
			t.Fatalf("expected ErrFormLinkInactive, got %v", err)
		}
	})

	t.Run("records the view in background", func(t *testing.T) {
		uc, repo := newFormLinkUseCase(t, nil)
		repo.EXPECT().GetBySlug(gomock.Any(), "geo-silva").Return(entities.BudgetFormLink{ID: "form-1", IsActive: true}, nil)
		repo.EXPECT().RecordView(gomock.Any(), "form-1", fixedNow).Return(errors.New("throttled"))

		ctx, cancel := context.WithCancel(context.Background())
		l, err := uc.ResolveBySlug(ctx, " Geo-Silva ")
		cancel()
		require.NoError(t, err)
		assert.Equal(t, "form-1", l.ID)
		uc.Wait()
	})
}

func TestFormLinkUseCase_SubmitPublicRequest(t *testing.T) {
	t.Run("inactive link", func(t *testing.T) {
		creator := &fakeBudgetCreator{}
		uc, repo := newFormLinkUseCase(t, creator)
		repo.EXPECT().GetBySlug(gomock.Any(), "geo-silva").Return(entities.BudgetFormLink{ID: "form-1", UserID: "owner-1"}, nil)

		_, err := uc.SubmitPublicRequest(context.Background(), "geo-silva", mariaRequest())
		if !errors.Is(err, ErrFormLinkInactive) {
			t.Fatalf("expected ErrFormLinkInactive, got %v", err)
		}
		assert.Empty(t, creator.gotLink.ID)
	})

	t.Run("creates budget and counts submission", func(t *testing.T) {
		creator := &fakeBudgetCreator{budget: entities.Budget{ID: "b-1", CustomLink: "orcamento-1"}}
		uc, repo := newFormLinkUseCase(t, creator)
		link := entities.BudgetFormLink{ID: "form-1", UserID: "owner-1", IsActive: true}
		repo.EXPECT().GetBySlug(gomock.Any(), "geo-silva").Return(link, nil)
		repo.EXPECT().RecordSubmission(gomock.Any(), "form-1").Return(nil)

		b, err := uc.SubmitPublicRequest(context.Background(), "geo-silva", mariaRequest())
		require.NoError(t, err)
		assert.Equal(t, "orcamento-1", b.CustomLink)
		assert.Equal(t, link, creator.gotLink)
	})

	t.Run("creator failure skips the counter", func(t *testing.T) {
		creator := &fakeBudgetCreator{err: &interfaces.CalculatorError{Message: "fora da área", StatusCode: 422}}
		uc, repo := newFormLinkUseCase(t, creator)
		repo.EXPECT().GetBySlug(gomock.Any(), "geo-silva").Return(entities.BudgetFormLink{ID: "form-1", UserID: "owner-1", IsActive: true}, nil)

		_, err := uc.SubmitPublicRequest(context.Background(), "geo-silva", mariaRequest())
		require.Error(t, err)
	})
}

func TestWithSlugSuffix(t *testing.T) {
	assert.Equal(t, "geo-silva-2", withSlugSuffix("geo-silva", "2"))

	long := strings.Repeat("ab-", 40)
	got := withSlugSuffix(long, "1760000000000")
	assert.LessOrEqual(t, len(got), maxSlugLen)
	assert.True(t, validSlug(got), got)

	assert.False(t, validSlug(strings.Repeat("a", maxSlugLen)+"-1760000000000"))
}
