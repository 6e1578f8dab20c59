package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

// IsTestDBConfigured reports whether the environment points to a database
// for repository tests.
func IsTestDBConfigured() bool {
	return os.Getenv("TEST_POSTGRESQL_URL") != "" && os.Getenv("TEST_MIGRATIONS_PATH") != ""
}

func applyMigrations(connString string) {
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		panic("TEST_MIGRATIONS_PATH must be set.")
	}
	m, err := NewMigrator(migrationsPath, connString)
	if err != nil {
		panic("Could not connect to DB for applying migrations.")
	}
	defer m.Close()
	if err := m.Up(); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}
}

func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	applyMigrations(connString)

	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		panic("Could not connect to the database.")
	}

	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), `TRUNCATE "user", login, audit RESTART IDENTITY CASCADE`)
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}

type TestAccount struct {
	Email   string
	Status  string
	UserKey string
}

// InsertTestAccount creates an account directly, bypassing repositories.
func InsertTestAccount(pool *pgxpool.Pool, a TestAccount, createdAt time.Time) int64 {
	var id int64
	err := pool.QueryRow(
		context.Background(),
		`INSERT INTO "user" (email, status, user_key, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Email,
		a.Status,
		a.UserKey,
		createdAt,
	).Scan(&id)
	if err != nil {
		panic(fmt.Sprintf("Could not insert test account: %v.", err))
	}
	return id
}

// InsertTestCredential creates a login row directly, bypassing repositories.
func InsertTestCredential(pool *pgxpool.Pool, userID int64, provider, key, token string) int64 {
	var id int64
	err := pool.QueryRow(
		context.Background(),
		`INSERT INTO login (user_id, provider, provider_key, provider_token) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID,
		provider,
		key,
		token,
	).Scan(&id)
	if err != nil {
		panic(fmt.Sprintf("Could not insert test credential: %v.", err))
	}
	return id
}

func CountAuditEntries(pool *pgxpool.Pool, userID int64) int {
	var count int
	err := pool.QueryRow(
		context.Background(),
		`SELECT count(*) FROM audit WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		panic(fmt.Sprintf("Could not count audit entries: %v.", err))
	}
	return count
}
