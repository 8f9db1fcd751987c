package organization

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const pgUniqueViolation = "23505"

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/organizations/register", h.Register)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	o, err := h.svc.Register(c.Request().Context(), &in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": verr.Msg})
		}

		var pgErr *pgconn.PgError
		if errors.Is(err, ErrEmailTaken) || (errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Organization with this email already exists"})
		}

		h.logger.Error().Err(err).Msg("register organization")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error during organization registration"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"organization": o.Summary()})
}
