package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/services/contacts"
	httpHandler "github.com/danisworo/jualin/services/contacts/handler/http"
)

// Handler coordinates the contacts service HTTP handlers
type Handler struct {
	contactHTTP *httpHandler.ContactHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler for the contacts service
func NewHandler(contactUC contacts.ContactUC, cfg *models.Config) *Handler {
	return &Handler{
		contactHTTP: httpHandler.NewContactHandler(contactUC),
		cfg:         cfg,
	}
}

// JWTMiddleware validates the bearer token and exposes the identity claims
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

// RequireSeller rejects callers whose token does not carry the seller role
func RequireSeller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get("role").(string)
		if !ok || role != models.RoleSeller {
			return echo.NewHTTPError(http.StatusForbidden, "seller role required")
		}
		return next(c)
	}
}

// RegisterRoutes registers all contact routes. Every route requires a
// seller session.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	contactGroup := e.Group("/contacts", h.JWTMiddleware(), RequireSeller)
	contactGroup.POST("", h.contactHTTP.CreateContact)
	contactGroup.GET("", h.contactHTTP.ListContacts)
	contactGroup.GET("/:id", h.contactHTTP.GetContact)
	contactGroup.PUT("/:id", h.contactHTTP.UpdateContact)
	contactGroup.DELETE("/:id", h.contactHTTP.DeleteContact)
	contactGroup.PATCH("/:id/status", h.contactHTTP.UpdateContactStatus)
	contactGroup.POST("/:id/invitation/cancel", h.contactHTTP.CancelInvitation)
}
