package auth

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	u, err := h.svc.Register(c.Request().Context(), &in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": verr.Msg})
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Username already exists"})
		}
		h.logger.Error().Err(err).Msg("register user")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error during registration"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"user": u.Profile()})
}

func (h *Handler) Login(c echo.Context) error {
	var in LoginInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	u, token, err := h.svc.Login(c.Request().Context(), &in)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid username or password"})
		}
		h.logger.Error().Err(err).Msg("login")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error during login"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":  u.Profile(),
		"token": token,
	})
}
