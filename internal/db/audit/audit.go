package audit

import (
	"context"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/db"
	"time"
)

// PgxAuditRepository only appends. Entries are never updated or deleted.
type PgxAuditRepository struct {
	db db.DBTX
}

func NewPgxAuditRepository(dbtx db.DBTX) *PgxAuditRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAuditRepository{db: dbtx}
}

func (r *PgxAuditRepository) Create(ctx context.Context, input user.CreateAuditEntryInput) (entry user.AuditEntry, err error) {
	var (
		id        int64
		userID    int64
		subject   string
		text      string
		createdAt time.Time
	)
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO audit (user_id, subject, entry, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, subject, entry, created_at`,
		int64(input.UserID),
		input.Subject,
		input.Entry,
		input.CreatedAt,
	).Scan(&id, &userID, &subject, &text, &createdAt)
	if err != nil {
		return entry, err
	}
	return user.AuditEntry{
		ID:        user.AuditEntryID(id),
		UserID:    user.ID(userID),
		Subject:   subject,
		Entry:     text,
		CreatedAt: createdAt,
	}, nil
}
