package entities

import (
	"fmt"
	"time"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - A budget is created "active" once the price calculator accepts the request.
//   - The customer approves or rejects it through the public link.
//   - A rejected budget can be resubmitted with corrected data.
type BudgetStatus string

const (
	BudgetStatusActive      BudgetStatus = "active"
	BudgetStatusApproved    BudgetStatus = "approved"
	BudgetStatusRejected    BudgetStatus = "rejected"
	BudgetStatusResubmitted BudgetStatus = "resubmitted"
	BudgetStatusDraft       BudgetStatus = "draft"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusActive, BudgetStatusApproved, BudgetStatusRejected, BudgetStatusResubmitted, BudgetStatusDraft:
		return true
	}
	return false
}

// CustomLinkPrefix is the prefix of auto-generated public links.
const CustomLinkPrefix = "orcamento-"

// DefaultCustomLink builds the public link generated at creation time.
func DefaultCustomLink(now time.Time) string {
	return fmt.Sprintf("%s%d", CustomLinkPrefix, now.UnixMilli())
}

// ClientType distinguishes individuals (CPF) from companies (CNPJ).
type ClientType string

const (
	ClientTypePessoaFisica   ClientType = "pessoa_fisica"
	ClientTypePessoaJuridica ClientType = "pessoa_juridica"
)

func (t ClientType) Valid() bool {
	return t == ClientTypePessoaFisica || t == ClientTypePessoaJuridica
}

// BudgetRequest is the snapshot of the form data used to price a budget.
type BudgetRequest struct {
	ClientName            string     `json:"client_name" dynamodbav:"client_name" validate:"required"`
	ClientEmail           string     `json:"client_email" dynamodbav:"client_email" validate:"required,email"`
	ClientPhone           string     `json:"client_phone,omitempty" dynamodbav:"client_phone,omitempty"`
	ClientType            ClientType `json:"client_type,omitempty" dynamodbav:"client_type,omitempty" validate:"oneof=pessoa_fisica pessoa_juridica"`
	PropertyName          string     `json:"property_name" dynamodbav:"property_name" validate:"required"`
	PropertyType          string     `json:"property_type,omitempty" dynamodbav:"property_type,omitempty"`
	State                 string     `json:"state" dynamodbav:"state" validate:"required"`
	City                  string     `json:"city" dynamodbav:"city" validate:"required"`
	VerticesCount         int        `json:"vertices_count" dynamodbav:"vertices_count" validate:"gt=0"`
	PropertyArea          float64    `json:"property_area" dynamodbav:"property_area" validate:"gt=0"`
	ServiceType           string     `json:"service_type,omitempty" dynamodbav:"service_type,omitempty"`
	IsUrgent              bool       `json:"is_urgent" dynamodbav:"is_urgent"`
	IncludesTopography    bool       `json:"includes_topography" dynamodbav:"includes_topography"`
	IncludesEnvironmental bool       `json:"includes_environmental" dynamodbav:"includes_environmental"`
	AdditionalNotes       string     `json:"additional_notes,omitempty" dynamodbav:"additional_notes,omitempty"`
}

// BreakdownLine is one line of the calculator output. Negative values are
// discounts.
type BreakdownLine struct {
	Item  string `json:"item" dynamodbav:"item"`
	Value Amount `json:"value" dynamodbav:"value"`
}

func (l BreakdownLine) IsDiscount() bool { return l.Value < 0 }

// BudgetResult is the snapshot of the price calculator output.
//
// TotalCost is the legacy name of TotalPrice; both are optional so the total
// resolution can tell "absent" from "zero".
type BudgetResult struct {
	TotalPrice    *Amount         `json:"total_price,omitempty" dynamodbav:"total_price,omitempty"`
	TotalCost     *Amount         `json:"total_cost,omitempty" dynamodbav:"total_cost,omitempty"`
	Breakdown     []BreakdownLine `json:"breakdown,omitempty" dynamodbav:"breakdown,omitempty"`
	EstimatedDays int             `json:"estimated_days,omitempty" dynamodbav:"estimated_days,omitempty"`
}

// CalculatedTotal returns total_price, then total_cost, and reports whether
// any was present.
func (r BudgetResult) CalculatedTotal() (float64, bool) {
	if r.TotalPrice != nil {
		return r.TotalPrice.Float64(), true
	}
	if r.TotalCost != nil {
		return r.TotalCost.Float64(), true
	}
	return 0, false
}

// Budget is the quote persisted for a professional (owner).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id / created_at
//   - custom_link uniqueness is kept in the unique_keys table
//
// Total and TotalPrice are denormalised copies of the calculator total taken
// at creation time; BudgetResult stays authoritative when both exist.
type Budget struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	ClientID         string        `json:"client_id,omitempty"`
	FormLinkID       string        `json:"form_link_id,omitempty"`
	Request          BudgetRequest `json:"budget_request"`
	Result           BudgetResult  `json:"budget_result"`
	Total            *Amount       `json:"total,omitempty"`
	TotalPrice       *Amount       `json:"total_price,omitempty"`
	Status           BudgetStatus  `json:"status"`
	CustomLink       string        `json:"custom_link"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	ApprovalDate     *time.Time    `json:"approval_date,omitempty"`
	RejectionDate    *time.Time    `json:"rejection_date,omitempty"`
	RejectionComment string        `json:"rejection_comment,omitempty"`
}

// RecordedTotal is the amount used for client counters: the calculator total
// when known, else the denormalised fields.
func (b Budget) RecordedTotal() float64 {
	if v, ok := b.Result.CalculatedTotal(); ok {
		return v
	}
	if b.TotalPrice != nil {
		return b.TotalPrice.Float64()
	}
	if b.Total != nil {
		return b.Total.Float64()
	}
	return 0
}
