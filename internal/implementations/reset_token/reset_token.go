package resettoken

import (
	"crypto/rand"
	"encoding/base64"
	"gatekeeper/internal/core/domain/user"
)

const DefaultTokenSize = 32

// Generator produces URL-safe password reset tokens from the system CSPRNG.
type Generator struct {
	size int
}

func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = DefaultTokenSize
	}
	return &Generator{size: size}
}

func (g *Generator) GenerateResetToken() (user.PasswordResetToken, error) {
	b := make([]byte, g.size)
	if _, err := rand.Read(b); err != nil {
		return user.PasswordResetToken(""), err
	}
	return user.PasswordResetToken(base64.RawURLEncoding.EncodeToString(b)), nil
}
