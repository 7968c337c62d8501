package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

// schema is created idempotently at every start; there is no migration
// tooling. audit_logs.actor_id is RESTRICT so an identity with audit
// history cannot be deleted; issues keep a nullable reporter instead.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT,
	email         TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT UNIQUE NOT NULL,
	description TEXT,
	active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS issues (
	id               BIGSERIAL PRIMARY KEY,
	reporter_user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
	type             TEXT,
	priority         TEXT,
	title            TEXT NOT NULL,
	description      TEXT,
	address          TEXT,
	city             TEXT,
	landmark         TEXT,
	status           TEXT NOT NULL DEFAULT 'reported',
	reported_date    TIMESTAMPTZ NOT NULL DEFAULT now(),
	contact          TEXT,
	upvotes          INTEGER NOT NULL DEFAULT 0,
	gps_location     TEXT,
	category_id      BIGINT REFERENCES categories(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT
);

CREATE TABLE IF NOT EXISTS audit_logs (
	id          BIGSERIAL PRIMARY KEY,
	actor_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
	action      TEXT NOT NULL,
	entity_type TEXT,
	entity_id   BIGINT,
	details     TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

var defaultCategories = [][2]string{
	{"Garbage & Waste", "Garbage and waste management issues"},
	{"Road & Infrastructure", "Roads, potholes, infrastructure"},
	{"Water Supply", "Water leakage and supply"},
	{"Electricity", "Power cuts and street lights"},
	{"Safety & Security", "Public safety"},
	{"Public Transport", "Buses, trains, metro"},
	{"Parks & Recreation", "Parks and recreation"},
	{"Noise Pollution", "Noise complaints"},
	{"Air Quality", "Air pollution"},
	{"Other", "Miscellaneous"},
}

// Seed is the bootstrap admin identity.
type Seed struct {
	AdminEmail    string
	AdminPassword string
}

// Init creates the schema and seeds default categories plus the bootstrap
// admin. It runs before the HTTP server accepts requests and is safe to
// run on every start: every step is guarded by an existence check.
func (d *DB) Init(ctx context.Context, seed Seed, log zerolog.Logger) error {
	if _, err := d.sql.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var categories int64
	if err := d.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&categories); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if categories == 0 {
		for _, c := range defaultCategories {
			if _, err := d.sql.ExecContext(ctx,
				`INSERT INTO categories (name, description) VALUES ($1, $2)`, c[0], c[1]); err != nil {
				return fmt.Errorf("seed category %q: %w", c[0], err)
			}
		}
		log.Info().Int("count", len(defaultCategories)).Msg("seeded default categories")
	}

	var admins int64
	if err := d.sql.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, domain.RoleAdmin).Scan(&admins); err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		if _, err := d.sql.ExecContext(ctx,
			`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
			"Administrator", seed.AdminEmail, string(hash), domain.RoleAdmin); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Info().Str("email", seed.AdminEmail).Msg("seeded admin user")
	}

	return nil
}
