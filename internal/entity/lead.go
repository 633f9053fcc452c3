package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmailAlreadyExists = errors.New("email already registered")

// Lead is a captured landing-page form submission.
type Lead struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	Website         string    `json:"website,omitempty"`
	AdSpend         string    `json:"ad_spend,omitempty"`
	MonthlyRevenue  string    `json:"monthly_revenue,omitempty"`
	GrowthChallenge string    `json:"growth_challenge,omitempty"`
	UTMSource       string    `json:"utm_source,omitempty"`
	UTMMedium       string    `json:"utm_medium,omitempty"`
	UTMCampaign     string    `json:"utm_campaign,omitempty"`
	UTMTerm         string    `json:"utm_term,omitempty"`
	UTMContent      string    `json:"utm_content,omitempty"`
	LandingPath     string    `json:"landing_path,omitempty"`
	IPAddress       string    `json:"ip_address,omitempty"`
	UserAgent       string    `json:"user_agent,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Factory
func NewLead(email, firstName string) *Lead {
	return &Lead{
		ID:        uuid.New().String(),
		Email:     email,
		FirstName: firstName,
		CreatedAt: time.Now().UTC(),
	}
}

type LeadRepositoryInterface interface {
	// Insert persists the lead into the vertical's table. A duplicate email
	// surfaces as ErrEmailAlreadyExists; one attempt only, no retries.
	Insert(ctx context.Context, table string, lead *Lead) error
}
