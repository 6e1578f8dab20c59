package loginwithtoken

import (
	"encoding/json"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/services"
	service "gatekeeper/internal/core/services/authenticate_by_token"
	"gatekeeper/internal/http/handlers/response"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func serve(s *services.FakeService[service.Input, service.Result], body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login/token", strings.NewReader(body))
	New(s).ServeHTTP(rw, r)
	return rw
}

func TestLoginSuccess(t *testing.T) {
	account := user.Account{ID: 1, Email: "a@b.com", Status: user.StatusActive, UserKey: "user-key"}
	s := services.NewFakeService[service.Input, service.Result](service.Result{Account: account}, nil)

	rw := serve(s, `{"token": "static-token"}`)

	require.Equal(t, http.StatusOK, rw.Code)
	result := response.Login{}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &result))
	require.Equal(t, "user-key", result.SessionKey)
	require.Equal(t, user.ProviderToken("static-token"), s.Inputs[0].Token)
}

func TestLoginErrors(t *testing.T) {
	cases := []struct {
		id     string
		err    error
		status int
	}{
		{id: "invalid token", err: user.ErrInvalidToken, status: http.StatusUnauthorized},
		{id: "account denied", err: user.ErrAccountDenied, status: http.StatusForbidden},
		{id: "storage failure", err: user.ErrStorageFailure, status: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := services.NewFakeService[service.Input, service.Result](service.Result{}, testcase.err)

			rw := serve(s, `{"token": "static-token"}`)

			require.Equal(t, testcase.status, rw.Code)
		})
	}
}

func TestEmptyToken(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result](service.Result{}, nil)

	rw := serve(s, `{"token": ""}`)

	require.Equal(t, http.StatusBadRequest, rw.Code)
	require.Empty(t, s.Inputs)
}
