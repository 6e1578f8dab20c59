package resetpassword

import (
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/services"
	resetpassword "gatekeeper/internal/core/services/reset_password"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const BODY = `{"token": "abc", "new_password": "new-password"}`

func serve(s *services.FakeService[resetpassword.Input, resetpassword.Result], body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/auth/password_reset", strings.NewReader(body))
	New(s).ServeHTTP(rw, r)
	return rw
}

func TestPasswordReset(t *testing.T) {
	s := services.NewFakeService[resetpassword.Input, resetpassword.Result](resetpassword.Result{}, nil)

	rw := serve(s, BODY)

	require.Equal(t, http.StatusOK, rw.Code)
	require.Equal(t, user.PasswordResetToken("abc"), s.Inputs[0].Token)
	require.Equal(t, user.RawPassword("new-password"), s.Inputs[0].NewPassword)
}

func TestPasswordNotReset(t *testing.T) {
	cases := []struct {
		id     string
		err    error
		status int
	}{
		{id: "invalid token", err: user.ErrExpiredOrMissingResetToken, status: http.StatusNotFound},
		{id: "no password credential", err: user.ErrUnknownEmail, status: http.StatusUnprocessableEntity},
		{id: "storage failure", err: user.ErrStorageFailure, status: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := services.NewFakeService[resetpassword.Input, resetpassword.Result](resetpassword.Result{}, testcase.err)

			rw := serve(s, BODY)

			require.Equal(t, testcase.status, rw.Code)
		})
	}
}

func TestInvalidInput(t *testing.T) {
	for _, body := range []string{`{}`, `{"token": "abc"}`, `{"token": "abc", "new_password": "short"}`} {
		s := services.NewFakeService[resetpassword.Input, resetpassword.Result](resetpassword.Result{}, nil)

		rw := serve(s, body)

		require.Equal(t, http.StatusBadRequest, rw.Code, body)
		require.Empty(t, s.Inputs)
	}
}
