// Package migrations owns the schema. Statements are idempotent so Apply can
// run on every boot.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS identities (
		identity_id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_identities_email ON identities (email)`,
	`CREATE TABLE IF NOT EXISTS companies (
		company_id TEXT PRIMARY KEY,
		identity_id TEXT NOT NULL REFERENCES identities (identity_id),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		website TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_email ON companies (email)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_identity ON companies (identity_id)`,
	`CREATE TABLE IF NOT EXISTS internships (
		internship_id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (company_id),
		title TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		application_id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL REFERENCES identities (identity_id),
		internship_id TEXT NOT NULL REFERENCES internships (internship_id),
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_student_internship
		ON applications (student_id, internship_id)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		review_id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL REFERENCES identities (identity_id),
		company_id TEXT NOT NULL REFERENCES companies (company_id),
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_reviews_author_company
		ON reviews (author_id, company_id)`,
	`CREATE TABLE IF NOT EXISTS admin_audit_log (
		audit_id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		action TEXT NOT NULL,
		target_id TEXT NOT NULL DEFAULT '',
		justification TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL,
		source_ip TEXT NOT NULL DEFAULT '',
		correlation_id TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS admin_idempotency_keys (
		key TEXT PRIMARY KEY,
		request_hash TEXT NOT NULL,
		response_body BYTEA,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
}

func Apply(ctx context.Context, db *sql.DB) error {
	for i, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("apply migration %d: %w", i+1, err)
		}
	}
	return nil
}
