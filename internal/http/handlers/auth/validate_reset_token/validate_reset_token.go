package validateresettoken

import (
	"errors"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/services"
	service "gatekeeper/internal/core/services/validate_reset_token"
	"gatekeeper/internal/http/handlers/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const URL_PARAM_TOKEN = "token"

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Email string `json:"email"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, URL_PARAM_TOKEN)
	if token == "" || len(token) > 1024 {
		response.RenderInvalidResetToken(rw)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Token: user.PasswordResetToken(token)})
	if errors.Is(err, user.ErrExpiredOrMissingResetToken) {
		response.RenderInvalidResetToken(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Email: string(result.Account.Email)}, http.StatusOK)
}
