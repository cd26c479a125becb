package db

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open opens a pooled connection to Postgres and verifies it with a ping.
func Open(dsn, environment string) (*sql.DB, error) {
	// In a development environment, we want to ensure that SSL is disabled for
	// local testing. In production, the connection string should be provided
	// with the correct SSL settings.
	if environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := " "
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			if strings.Contains(dsn, "?") {
				separator = "&"
			} else {
				separator = "?"
			}
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('student', 'instructor')),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title             TEXT NOT NULL,
		description       TEXT NOT NULL,
		content           TEXT NOT NULL DEFAULT '',
		category          TEXT NOT NULL DEFAULT 'Other',
		level             TEXT NOT NULL DEFAULT 'Beginner'
		                  CHECK (level IN ('Beginner', 'Intermediate', 'Advanced')),
		duration          TEXT NOT NULL DEFAULT 'Self-paced',
		price             TEXT NOT NULL DEFAULT 'Free',
		prerequisites     TEXT NOT NULL DEFAULT 'None',
		learning_outcomes TEXT NOT NULL DEFAULT '',
		instructor_id     UUID NOT NULL REFERENCES users (id),
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// The unique index closes the race between the duplicate-enrollment check
	// and the insert under concurrent requests.
	`CREATE TABLE IF NOT EXISTS enrollments (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES users (id),
		course_id  UUID NOT NULL REFERENCES courses (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (student_id, course_id)
	)`,
}

// Migrate applies the bootstrap schema. Every statement is idempotent, so the
// whole thing reruns safely on each startup.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
