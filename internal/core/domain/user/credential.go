package user

type CredentialID int64

type Provider string

const (
	PasswordProvider Provider = "password"
	TokenProvider    Provider = "token"
)

const (
	PasswordProviderKey = "password"
	TokenProviderKey    = "token"
)

// ProviderToken is the secret part of a credential: a password hash for
// password logins or a static token for token logins.
type ProviderToken string

func (t ProviderToken) String() string {
	return "***"
}

type Credential struct {
	ID            CredentialID
	UserID        ID
	Provider      Provider
	ProviderKey   string
	ProviderToken ProviderToken
}

func (c *Credential) IsPassword() bool {
	return c.Provider == PasswordProvider
}

func (c *Credential) PasswordHash() PasswordHash {
	return PasswordHash(c.ProviderToken)
}
