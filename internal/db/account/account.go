package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/db"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"
)

const PASSWORD_RESET_TOKEN_CONSTRAINT_NAME = "user_password_reset_token_idx"

const accountColumns = `id, email, status, user_key, password_reset_token,
	password_reset_token_expiration, last_login, created_at`

type PgxAccountRepository struct {
	db db.DBTX
}

func NewPgxAccountRepository(dbtx db.DBTX) *PgxAccountRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAccountRepository{db: dbtx}
}

func (r *PgxAccountRepository) GetByID(ctx context.Context, id user.ID) (a user.Account, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM "user" WHERE id = $1`, int64(id))
	return scanAccount(row)
}

func (r *PgxAccountRepository) GetByEmail(ctx context.Context, email c.Email) (a user.Account, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM "user" WHERE email = $1`, string(email))
	return scanAccount(row)
}

func (r *PgxAccountRepository) GetByResetToken(
	ctx context.Context,
	token user.PasswordResetToken,
	now time.Time,
) (a user.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM "user"
		WHERE password_reset_token = $1 AND password_reset_token_expiration > $2`,
		string(token),
		now,
	)
	return scanAccount(row)
}

func (r *PgxAccountRepository) GetByUserKey(ctx context.Context, key user.SessionKey) (a user.Account, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM "user" WHERE user_key = $1`, string(key))
	return scanAccount(row)
}

func (r *PgxAccountRepository) Update(ctx context.Context, input user.UpdateAccountInput) (a user.Account, err error) {
	sets := make([]string, 0, 3)
	args := []interface{}{int64(input.ID)}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.DoLastLoginUpdate {
		set("last_login", db.EncodeOptionalTime(input.LastLogin))
	}
	if input.DoPasswordResetTokenUpdate {
		set("password_reset_token", db.EncodeOptionalString(input.PasswordResetToken))
		set("password_reset_token_expiration", db.EncodeOptionalTime(input.PasswordResetTokenExpiration))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, input.ID)
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET `+strings.Join(sets, ", ")+` WHERE id = $1 RETURNING `+accountColumns,
		args...,
	)
	a, err = scanAccount(row)
	if db.IsUniqueViolation(err, PASSWORD_RESET_TOKEN_CONSTRAINT_NAME) {
		return a, user.ErrPasswordResetTokenAlreadyExists
	}
	return a, err
}

func scanAccount(row pgx.Row) (a user.Account, err error) {
	var (
		id                           int64
		email                        string
		status                       string
		userKey                      string
		passwordResetToken           sql.NullString
		passwordResetTokenExpiration sql.NullTime
		lastLogin                    sql.NullTime
		createdAt                    time.Time
	)
	err = row.Scan(
		&id,
		&email,
		&status,
		&userKey,
		&passwordResetToken,
		&passwordResetTokenExpiration,
		&lastLogin,
		&createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, user.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}

	a = user.Account{
		ID:                           user.ID(id),
		Email:                        c.Email(email),
		Status:                       user.Status(status),
		UserKey:                      user.SessionKey(userKey),
		PasswordResetToken:           db.DecodeOptionalString[user.PasswordResetToken](passwordResetToken),
		PasswordResetTokenExpiration: db.DecodeOptionalTime(passwordResetTokenExpiration),
		LastLogin:                    db.DecodeOptionalTime(lastLogin),
		CreatedAt:                    createdAt,
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}
