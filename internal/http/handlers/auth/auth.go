package auth

import (
	"context"
	"gatekeeper/internal/core/domain/user"
	"net/http"
	"strings"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 1024
)

type contextSessionKey string

const CONTEXT_SESSION_KEY = contextSessionKey("sessionKey")

func ParseSessionKey(r *http.Request) (key user.SessionKey, ok bool) {
	header := r.Header.Get("authorization")
	if header == "" {
		return key, false
	}
	parts := strings.SplitN(header, AUTH_TOKEN_PREFIX, 2)
	if len(parts) != 2 || parts[0] != "" || parts[1] == "" {
		return key, false
	}
	if len(parts[1]) > AUTH_TOKEN_MAX_LEN {
		return key, false
	}
	return user.SessionKey(parts[1]), true
}

func SetSessionKeyToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := ParseSessionKey(r)
		if ok {
			ctx := context.WithValue(r.Context(), CONTEXT_SESSION_KEY, key)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func SessionKeyFromContext(ctx context.Context) (key user.SessionKey, ok bool) {
	key, ok = ctx.Value(CONTEXT_SESSION_KEY).(user.SessionKey)
	return key, ok
}
