package entities

import "time"

type Address struct {
	Street  string `json:"street,omitempty" dynamodbav:"street,omitempty"`
	Number  string `json:"number,omitempty" dynamodbav:"number,omitempty"`
	City    string `json:"city,omitempty" dynamodbav:"city,omitempty"`
	State   string `json:"state,omitempty" dynamodbav:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty" dynamodbav:"zip_code,omitempty"`
	Country string `json:"country,omitempty" dynamodbav:"country,omitempty"`
}

// Client is a customer of a professional.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
//
// TotalBudgets and TotalSpent are maintained only through atomic ADD updates
// issued in the same transaction that creates or deletes a budget.
type Client struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	SecondaryPhone string     `json:"secondary_phone,omitempty"`
	ClientType     ClientType `json:"client_type"`
	Document       string     `json:"document,omitempty"`
	CompanyName    string     `json:"company_name,omitempty"`
	Address        Address    `json:"address"`
	Website        string     `json:"website,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	IsActive       bool       `json:"is_active"`
	TotalBudgets   int        `json:"total_budgets"`
	TotalSpent     float64    `json:"total_spent"`
	LastBudgetDate *time.Time `json:"last_budget_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ClientFromRequest builds a client from the inline customer fields of a
// budget request. Counters start at the values of that first budget.
func ClientFromRequest(id, userID string, req BudgetRequest, firstBudgetTotal float64, now time.Time) Client {
	ct := req.ClientType
	if !ct.Valid() {
		ct = ClientTypePessoaFisica
	}
	last := now
	return Client{
		ID:             id,
		UserID:         userID,
		Name:           req.ClientName,
		Email:          req.ClientEmail,
		Phone:          req.ClientPhone,
		ClientType:     ct,
		Address:        Address{City: req.City, State: req.State, Country: "Brasil"},
		IsActive:       true,
		TotalBudgets:   1,
		TotalSpent:     firstBudgetTotal,
		LastBudgetDate: &last,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
