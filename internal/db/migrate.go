package db

import (
	"context"
	"database/sql"
)

// Users are created lazily, the moment a new federated identity first
// authenticates. A claim binds one federated identity (its key) to exactly
// one user, forever; the unique primary key is what lets concurrent
// first-time resolutions converge on a single user.
const identityMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS claims (
    id text PRIMARY KEY,
    user_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS claims_user_id_idx
ON claims (user_id);
`

func RunIdentityMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, identityMigration)
	return err
}
