package credential

import (
	"context"
	"errors"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/db"

	"github.com/jackc/pgx/v4"
)

const credentialColumns = `l.id, l.user_id, l.provider, l.provider_key, l.provider_token`

type PgxCredentialRepository struct {
	db db.DBTX
}

func NewPgxCredentialRepository(dbtx db.DBTX) *PgxCredentialRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCredentialRepository{db: dbtx}
}

// Get matches all three columns exactly.
func (r *PgxCredentialRepository) Get(
	ctx context.Context,
	provider user.Provider,
	key string,
	token user.ProviderToken,
) (user.Credential, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+credentialColumns+` FROM login l
		WHERE l.provider = $1 AND l.provider_key = $2 AND l.provider_token = $3`,
		string(provider),
		key,
		string(token),
	)
	return scanCredential(row)
}

func (r *PgxCredentialRepository) GetPasswordByEmail(ctx context.Context, email c.Email) (user.Credential, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+credentialColumns+` FROM login l
		JOIN "user" u ON u.id = l.user_id
		WHERE u.email = $1 AND l.provider = $2
		ORDER BY l.id
		LIMIT 1`,
		string(email),
		string(user.PasswordProvider),
	)
	return scanCredential(row)
}

func (r *PgxCredentialRepository) GetPasswordByUserID(ctx context.Context, userID user.ID) (user.Credential, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+credentialColumns+` FROM login l
		WHERE l.user_id = $1 AND l.provider = $2
		ORDER BY l.id
		LIMIT 1`,
		int64(userID),
		string(user.PasswordProvider),
	)
	return scanCredential(row)
}

func (r *PgxCredentialRepository) SetProviderToken(
	ctx context.Context,
	id user.CredentialID,
	token user.ProviderToken,
) error {
	tag, err := r.db.Exec(ctx, `UPDATE login SET provider_token = $2 WHERE id = $1`, int64(id), string(token))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrCredentialDoesNotExist
	}
	return nil
}

func scanCredential(row pgx.Row) (cr user.Credential, err error) {
	var (
		id            int64
		userID        int64
		provider      string
		providerKey   string
		providerToken string
	)
	err = row.Scan(&id, &userID, &provider, &providerKey, &providerToken)
	if errors.Is(err, pgx.ErrNoRows) {
		return cr, user.ErrCredentialDoesNotExist
	}
	if err != nil {
		return cr, err
	}
	return user.Credential{
		ID:            user.CredentialID(id),
		UserID:        user.ID(userID),
		Provider:      user.Provider(provider),
		ProviderKey:   providerKey,
		ProviderToken: user.ProviderToken(providerToken),
	}, nil
}
