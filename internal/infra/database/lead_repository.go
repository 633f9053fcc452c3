package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"github.com/obsidianco/lead-capture/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Insert writes the lead into the given vertical table. Email uniqueness is
// enforced by the table constraint, not pre-checked here; the conflict comes
// back as entity.ErrEmailAlreadyExists.
func (r *LeadRepository) Insert(ctx context.Context, table string, lead *entity.Lead) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, email, first_name, website, ad_spend, monthly_revenue,
			growth_challenge, utm_source, utm_medium, utm_campaign, utm_term,
			utm_content, landing_path, ip_address, user_agent, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, table)

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Email,
		lead.FirstName,
		nullString(lead.Website),
		nullString(lead.AdSpend),
		nullString(lead.MonthlyRevenue),
		nullString(lead.GrowthChallenge),
		nullString(lead.UTMSource),
		nullString(lead.UTMMedium),
		nullString(lead.UTMCampaign),
		nullString(lead.UTMTerm),
		nullString(lead.UTMContent),
		nullString(lead.LandingPath),
		nullString(lead.IPAddress),
		nullString(lead.UserAgent),
		lead.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}

		// Full detail stays in the server log; callers get a summary.
		log.Printf("lead insert failed on %s: %v", table, err)
		return err
	}

	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
