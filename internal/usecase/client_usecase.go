package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidClientID = errors.New("invalid client id")

// ClientInput is the editable profile of a client.
type ClientInput struct {
	Name           string              `json:"name" validate:"required"`
	Email          string              `json:"email" validate:"required,email"`
	Phone          string              `json:"phone"`
	SecondaryPhone string              `json:"secondary_phone"`
	ClientType     entities.ClientType `json:"client_type" validate:"oneof=pessoa_fisica pessoa_juridica"`
	Document       string              `json:"document"`
	CompanyName    string              `json:"company_name"`
	Address        entities.Address    `json:"address"`
	Website        string              `json:"website"`
	Notes          string              `json:"notes"`
}

type IClientUseCase interface {
	Create(ctx context.Context, ownerID string, in ClientInput) (entities.Client, error)
	Get(ctx context.Context, ownerID, id string) (entities.Client, error)
	List(ctx context.Context, ownerID string, includeInactive bool) ([]entities.Client, error)
	Update(ctx context.Context, ownerID, id string, in ClientInput) (entities.Client, error)
	Deactivate(ctx context.Context, ownerID, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository

	now   func() time.Time
	newID func() string
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func normalizeClientInput(in ClientInput) ClientInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.SecondaryPhone = strings.TrimSpace(in.SecondaryPhone)
	in.Document = strings.TrimSpace(in.Document)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Website = strings.TrimSpace(in.Website)
	in.Notes = strings.TrimSpace(in.Notes)
	in.Address.State = strings.ToUpper(strings.TrimSpace(in.Address.State))
	if in.ClientType == "" {
		in.ClientType = entities.ClientTypePessoaFisica
	}
	if in.Address.Country == "" {
		in.Address.Country = "Brasil"
	}
	return in
}

func validateClientInput(in ClientInput) error {
	return validateStruct(in)
}

func applyClientInput(c *entities.Client, in ClientInput) {
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.SecondaryPhone = in.SecondaryPhone
	c.ClientType = in.ClientType
	c.Document = in.Document
	c.CompanyName = in.CompanyName
	c.Address = in.Address
	c.Website = in.Website
	c.Notes = in.Notes
}

func (u *ClientUseCase) Create(ctx context.Context, ownerID string, in ClientInput) (entities.Client, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Client{}, ErrInvalidOwner
	}
	in = normalizeClientInput(in)
	if err := validateClientInput(in); err != nil {
		return entities.Client{}, err
	}

	now := u.now()
	c := entities.Client{
		ID:        u.newID(),
		UserID:    ownerID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyClientInput(&c, in)

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	l := logger.Component("client.usecase")
	l.Info().Str("owner_id", ownerID).Str("client_id", created.ID).Msg("client created")
	return created, nil
}

func (u *ClientUseCase) Get(ctx context.Context, ownerID, id string) (entities.Client, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Client{}, ErrInvalidOwner
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" || c.UserID != ownerID {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, ownerID string, includeInactive bool) ([]entities.Client, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	return u.repo.ListByUserID(ctx, ownerID, includeInactive)
}

// Update replaces the profile fields. Counters are left untouched.
func (u *ClientUseCase) Update(ctx context.Context, ownerID, id string, in ClientInput) (entities.Client, error) {
	in = normalizeClientInput(in)
	if err := validateClientInput(in); err != nil {
		return entities.Client{}, err
	}
	c, err := u.Get(ctx, ownerID, id)
	if err != nil {
		return entities.Client{}, err
	}

	applyClientInput(&c, in)
	c.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrPreconditionFailed) {
			return entities.Client{}, ErrClientNotFound
		}
		return entities.Client{}, err
	}
	return updated, nil
}

// Deactivate soft deletes a client; its budgets keep pointing at it.
func (u *ClientUseCase) Deactivate(ctx context.Context, ownerID, id string) error {
	c, err := u.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !c.IsActive {
		return nil
	}
	if _, err := u.repo.SetActive(ctx, c.ID, false); err != nil {
		return err
	}
	l := logger.Component("client.usecase")
	l.Info().Str("owner_id", c.UserID).Str("client_id", c.ID).Msg("client deactivated")
	return nil
}
