package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/services/auth"
	httpHandler "github.com/danisworo/jualin/services/auth/handler/http"
)

// Handler coordinates the auth service HTTP handlers
type Handler struct {
	authHTTP *httpHandler.AuthHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler for the auth service
func NewHandler(authUC auth.AuthUC, cfg *models.Config) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(authUC),
		cfg:      cfg,
	}
}

// JWTMiddleware returns the configured JWT middleware and copies the
// identity claims into the echo context for downstream handlers.
func (h *Handler) JWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if userID, exists := claims["user_id"]; exists {
				c.Set("user_id", userID)
			}
			if role, exists := claims["role"]; exists {
				c.Set("role", role)
			}
		},
	})
}

// RegisterRoutes registers all auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHTTP.Signup)
	authGroup.POST("/login", h.authHTTP.Login)
	authGroup.POST("/otp/send", h.authHTTP.SendOTP)
	authGroup.POST("/otp/resend", h.authHTTP.ResendOTP)
	authGroup.POST("/otp/verify", h.authHTTP.VerifyOTP)

	protected := e.Group("/invitations", h.JWTMiddleware())
	protected.POST("/respond", h.authHTTP.AcceptInvite)
}
