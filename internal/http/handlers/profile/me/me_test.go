package me

import (
	"encoding/json"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/services"
	service "gatekeeper/internal/core/services/resolve_session"
	"gatekeeper/internal/http/handlers/auth"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serve(s *services.FakeService[service.Input, service.Result], authorization string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
	if authorization != "" {
		r.Header.Set("Authorization", authorization)
	}
	auth.SetSessionKeyToContext(New(s)).ServeHTTP(rw, r)
	return rw
}

func TestMe(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result](
		service.Result{Account: user.Account{ID: 1, Email: "a@b.com", Status: user.StatusActive}},
		nil,
	)

	rw := serve(s, "Bearer user-key")

	require.Equal(t, http.StatusOK, rw.Code)
	result := Result{}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &result))
	require.Equal(t, int64(1), result.User.ID)
	require.Equal(t, "active", result.User.Status)
	require.Nil(t, result.User.LastLogin)
	require.Equal(t, user.SessionKey("user-key"), s.Inputs[0].Key)
}

func TestMissingSessionKey(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result](service.Result{}, nil)

	rw := serve(s, "")

	require.Equal(t, http.StatusUnauthorized, rw.Code)
	require.Empty(t, s.Inputs)
}

func TestInvalidSessionKey(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result](service.Result{}, user.ErrInvalidSessionKey)

	rw := serve(s, "Bearer unknown")

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestStorageFailure(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result](service.Result{}, user.ErrStorageFailure)

	rw := serve(s, "Bearer user-key")

	require.Equal(t, http.StatusInternalServerError, rw.Code)
}
