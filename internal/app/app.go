package app

import (
	"fmt"
	"gatekeeper/internal/app/deps"
	"gatekeeper/internal/app/services"
	"gatekeeper/internal/http/handlers/auth"
	changepassword "gatekeeper/internal/http/handlers/auth/change_password"
	loginwithpassword "gatekeeper/internal/http/handlers/auth/log_in_with_password"
	loginwithtoken "gatekeeper/internal/http/handlers/auth/log_in_with_token"
	resetpassword "gatekeeper/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "gatekeeper/internal/http/handlers/auth/send_password_reset_token"
	validateresettoken "gatekeeper/internal/http/handlers/auth/validate_reset_token"
	"gatekeeper/internal/http/handlers/profile/me"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(s *services.Services, allowedOrigins []string, isTestMode bool) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/login", loginwithpassword.New(s.AuthenticateByPassword))
	authRouter.Method(http.MethodPost, "/login/token", loginwithtoken.New(s.AuthenticateByToken))
	authRouter.Method(http.MethodPut, "/password", changepassword.New(s.ChangePassword))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(
		http.MethodGet,
		"/password_reset/token/{token}",
		validateresettoken.New(s.ValidateResetToken),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetSessionKeyToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.ResolveSession))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)

	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(s, deps.Config.AllowedOrigins, deps.Config.IsTestMode),
		Addr:    fmt.Sprintf("0.0.0.0:%d", deps.Config.Port),
	}
}
