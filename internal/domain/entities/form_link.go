package entities

import "time"

// BudgetFormLink configures the public intake form of a professional.
// There is at most one per user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (slug-index): slug
//   - GSI (user_id-index): user_id
type BudgetFormLink struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	CustomMessage    string     `json:"custom_message,omitempty"`
	PrimaryColor     string     `json:"primary_color,omitempty"`
	IsActive         bool       `json:"is_active"`
	ViewsCount       int        `json:"views_count"`
	SubmissionsCount int        `json:"submissions_count"`
	LastViewedAt     *time.Time `json:"last_viewed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DefaultPrimaryColor is used when the professional did not pick one.
const DefaultPrimaryColor = "#2563eb"
