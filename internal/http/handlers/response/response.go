package response

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, "invalid session key", http.StatusUnauthorized)
}

// RenderInvalidCredentials does not tell an unknown email from a wrong password.
func RenderInvalidCredentials(rw http.ResponseWriter) {
	RenderError(rw, "invalid credentials", http.StatusUnauthorized)
}

func RenderAccountDenied(rw http.ResponseWriter) {
	RenderError(rw, "account is not active", http.StatusForbidden)
}

func RenderInvalidResetToken(rw http.ResponseWriter) {
	RenderError(rw, "password reset token is expired or does not exist", http.StatusNotFound)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
