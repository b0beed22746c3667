package usecase

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrFormLinkNotFound      = errors.New("form link not found")
	ErrFormLinkInactive      = errors.New("form link inactive")
	ErrFormLinkAlreadyExists = errors.New("form link already exists for user")
	ErrFormLinkSlugTaken     = errors.New("form link slug already in use")
)

const viewRecordTimeout = 5 * time.Second

// FormLinkInput is the editable configuration of an intake form.
type FormLinkInput struct {
	Slug          string `json:"slug" validate:"min=3,max=100,slug"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	CustomMessage string `json:"custom_message"`
	PrimaryColor  string `json:"primary_color" validate:"len=7,hexcolor"`
}

type IFormLinkUseCase interface {
	Create(ctx context.Context, ownerID string, in FormLinkInput) (entities.BudgetFormLink, error)
	GetMine(ctx context.Context, ownerID string) (entities.BudgetFormLink, error)
	Update(ctx context.Context, ownerID string, in FormLinkInput) (entities.BudgetFormLink, error)
	SetActive(ctx context.Context, ownerID string, active bool) (entities.BudgetFormLink, error)
	ResolveBySlug(ctx context.Context, slug string) (entities.BudgetFormLink, error)
	SubmitPublicRequest(ctx context.Context, slug string, req entities.BudgetRequest) (entities.Budget, error)
}

// publicBudgetCreator is the part of the budget store used by public
// submissions.
type publicBudgetCreator interface {
	CreateFromFormLink(ctx context.Context, link entities.BudgetFormLink, req entities.BudgetRequest) (entities.Budget, error)
}

type FormLinkUseCase struct {
	repo    interfaces.IFormLinkRepository
	budgets publicBudgetCreator

	// views tracks background view counters so shutdown can drain them.
	views sync.WaitGroup

	now   func() time.Time
	newID func() string
}

var _ IFormLinkUseCase = (*FormLinkUseCase)(nil)

func NewFormLinkUseCase(repo interfaces.IFormLinkRepository, budgets publicBudgetCreator) *FormLinkUseCase {
	return &FormLinkUseCase{
		repo:    repo,
		budgets: budgets,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Wait blocks until pending view updates are done.
func (u *FormLinkUseCase) Wait() { u.views.Wait() }

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify folds accents and collapses everything else into single hyphens:
// "Topografia São João" -> "topografia-sao-joao".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(folded), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	return slug
}

// defaultSlug derives the slug of a new form from its title. Titles that
// yield fewer than minSlugLen characters get formulario-<id prefix>.
func (u *FormLinkUseCase) defaultSlug(title string) string {
	if slug := Slugify(title); len(slug) >= minSlugLen {
		return slug
	}
	id := strings.ToLower(strings.ReplaceAll(u.newID(), "-", ""))
	if len(id) > 8 {
		id = id[:8]
	}
	return "formulario-" + id
}

// withSlugSuffix appends -suffix, shortening base so the result stays within
// maxSlugLen.
func withSlugSuffix(base, suffix string) string {
	if limit := maxSlugLen - len(suffix) - 1; len(base) > limit {
		base = strings.TrimRight(base[:limit], "-")
	}
	return base + "-" + suffix
}

func normalizeFormLinkInput(in FormLinkInput) FormLinkInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.CustomMessage = strings.TrimSpace(in.CustomMessage)
	in.PrimaryColor = strings.TrimSpace(in.PrimaryColor)
	in.Slug = strings.ToLower(strings.TrimSpace(in.Slug))
	if in.Slug == "" {
		in.Slug = Slugify(in.Title)
	}
	if in.PrimaryColor == "" {
		in.PrimaryColor = entities.DefaultPrimaryColor
	}
	return in
}

func validateFormLinkInput(in FormLinkInput) error {
	return validateStruct(in)
}

func (u *FormLinkUseCase) Create(ctx context.Context, ownerID string, in FormLinkInput) (entities.BudgetFormLink, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.BudgetFormLink{}, ErrInvalidOwner
	}
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = u.defaultSlug(in.Title)
	}
	in = normalizeFormLinkInput(in)
	if err := validateFormLinkInput(in); err != nil {
		return entities.BudgetFormLink{}, err
	}

	existing, err := u.repo.GetByUserID(ctx, ownerID)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	if existing.ID != "" {
		return entities.BudgetFormLink{}, ErrFormLinkAlreadyExists
	}

	now := u.now()
	l := entities.BudgetFormLink{
		ID:            u.newID(),
		UserID:        ownerID,
		Slug:          in.Slug,
		Title:         in.Title,
		Description:   in.Description,
		CustomMessage: in.CustomMessage,
		PrimaryColor:  in.PrimaryColor,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, l)
	var conflict *interfaces.UniqueConflictError
	if errors.As(err, &conflict) && conflict.Scope == interfaces.ScopeFormLinkSlug {
		l.Slug = withSlugSuffix(in.Slug, strconv.FormatInt(now.UnixMilli(), 10))
		created, err = u.repo.Create(ctx, l)
	}
	if err != nil {
		return entities.BudgetFormLink{}, mapFormLinkConflict(err)
	}

	lg := logger.Component("form_link.usecase")
	lg.Info().Str("owner_id", ownerID).Str("slug", created.Slug).Msg("form link created")
	return created, nil
}

func mapFormLinkConflict(err error) error {
	var conflict *interfaces.UniqueConflictError
	if !errors.As(err, &conflict) {
		return err
	}
	if conflict.Scope == interfaces.ScopeFormLinkUser {
		return ErrFormLinkAlreadyExists
	}
	return ErrFormLinkSlugTaken
}

func (u *FormLinkUseCase) GetMine(ctx context.Context, ownerID string) (entities.BudgetFormLink, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.BudgetFormLink{}, ErrInvalidOwner
	}
	l, err := u.repo.GetByUserID(ctx, ownerID)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	if l.ID == "" {
		return entities.BudgetFormLink{}, ErrFormLinkNotFound
	}
	return l, nil
}

// Update changes the form configuration. A slug used by someone else is
// rejected without suffixing.
func (u *FormLinkUseCase) Update(ctx context.Context, ownerID string, in FormLinkInput) (entities.BudgetFormLink, error) {
	current, err := u.GetMine(ctx, ownerID)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = current.Slug
	}
	in = normalizeFormLinkInput(in)
	if err := validateFormLinkInput(in); err != nil {
		return entities.BudgetFormLink{}, err
	}

	previous := current.Slug
	current.Slug = in.Slug
	current.Title = in.Title
	current.Description = in.Description
	current.CustomMessage = in.CustomMessage
	current.PrimaryColor = in.PrimaryColor
	current.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, current, previous)
	if err != nil {
		return entities.BudgetFormLink{}, mapFormLinkConflict(err)
	}
	return updated, nil
}

func (u *FormLinkUseCase) SetActive(ctx context.Context, ownerID string, active bool) (entities.BudgetFormLink, error) {
	current, err := u.GetMine(ctx, ownerID)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	if current.IsActive == active {
		return current, nil
	}
	return u.repo.SetActive(ctx, current.ID, active)
}

func (u *FormLinkUseCase) activeBySlug(ctx context.Context, slug string) (entities.BudgetFormLink, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return entities.BudgetFormLink{}, ErrFormLinkNotFound
	}
	l, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	if l.ID == "" {
		return entities.BudgetFormLink{}, ErrFormLinkNotFound
	}
	if !l.IsActive {
		return entities.BudgetFormLink{}, ErrFormLinkInactive
	}
	return l, nil
}

// ResolveBySlug returns an active form link and records the view in the
// background. View counting failures are only logged.
func (u *FormLinkUseCase) ResolveBySlug(ctx context.Context, slug string) (entities.BudgetFormLink, error) {
	l, err := u.activeBySlug(ctx, slug)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}

	at := u.now()
	u.views.Add(1)
	go func(ctx context.Context, id string) {
		defer u.views.Done()
		ctx, cancel := context.WithTimeout(ctx, viewRecordTimeout)
		defer cancel()
		if err := u.repo.RecordView(ctx, id, at); err != nil {
			lg := logger.Component("form_link.usecase")
			lg.Warn().Err(err).Str("form_link_id", id).Msg("failed recording view")
		}
	}(context.WithoutCancel(ctx), l.ID)

	return l, nil
}

// SubmitPublicRequest turns a public form submission into a budget owned by
// the form's professional.
func (u *FormLinkUseCase) SubmitPublicRequest(ctx context.Context, slug string, req entities.BudgetRequest) (entities.Budget, error) {
	l, err := u.activeBySlug(ctx, slug)
	if err != nil {
		return entities.Budget{}, err
	}

	b, err := u.budgets.CreateFromFormLink(ctx, l, req)
	if err != nil {
		return entities.Budget{}, err
	}

	lg := logger.Component("form_link.usecase")
	if err := u.repo.RecordSubmission(ctx, l.ID); err != nil {
		lg.Warn().Err(err).Str("form_link_id", l.ID).Msg("failed recording submission")
	}
	lg.Info().Str("form_link_id", l.ID).Str("budget_id", b.ID).Str("custom_link", b.CustomLink).Msg("public budget request received")
	return b, nil
}
