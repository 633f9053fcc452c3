package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/obsidianco/lead-capture/internal/entity"
)

const leadTableColumns = `
	id UUID PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	first_name VARCHAR(100),
	website VARCHAR(255),
	ad_spend VARCHAR(100),
	monthly_revenue VARCHAR(100),
	growth_challenge VARCHAR(255),
	utm_source VARCHAR(100),
	utm_medium VARCHAR(100),
	utm_campaign VARCHAR(100),
	utm_term VARCHAR(100),
	utm_content VARCHAR(100),
	landing_path VARCHAR(255),
	ip_address VARCHAR(64),
	user_agent TEXT,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()`

// EnsureSchema creates one lead table per vertical plus the lookup indexes.
// The four tables share a column set; verticals that never fill a column
// simply leave it NULL.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, v := range entity.Verticals {
		stmts := []string{
			fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", v.Table, leadTableColumns),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_email ON %s(email)", v.Table, v.Table),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_created_at ON %s(created_at)", v.Table, v.Table),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_utm_source ON %s(utm_source)", v.Table, v.Table),
		}
		for _, stmt := range stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("ensure schema for %s: %w", v.Table, err)
			}
		}
	}
	return nil
}
