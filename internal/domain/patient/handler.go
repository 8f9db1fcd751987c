package patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caresync/caresync/pkg/pagination"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Static segments before :id so echo does not shadow them.
	api.GET("/patients/doctors/list", h.ListDoctors)
	api.GET("/patients/treatments/list", h.ListTreatments)

	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

// listResponse is the envelope the listing endpoint returns.
type listResponse struct {
	Patients   []*Row              `json:"patients"`
	Pagination pagination.Envelope `json:"pagination"`
}

// ListPatients translates query-string parameters into a Filter, fetches one
// page plus the total matching count, and wraps both in the pagination
// envelope. currentPage echoes the request verbatim: pages past the end
// return an empty patients array, not an error.
func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)

	f := Filter{
		Search:         c.QueryParam("search"),
		Status:         c.QueryParam("status"),
		Treatment:      c.QueryParam("treatment"),
		DateFrom:       c.QueryParam("dateFrom"),
		DateTo:         c.QueryParam("dateTo"),
		OrderBy:        c.QueryParam("orderBy"),
		OrderDirection: c.QueryParam("orderDirection"),
		Limit:          pg.Limit,
		Offset:         pg.Offset(),
	}
	if err := f.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	rows, total, err := h.svc.ListPatients(c.Request().Context(), f)
	if err != nil {
		h.logger.Error().Err(err).Msg("list patients")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch patients"})
	}
	if rows == nil {
		rows = []*Row{}
	}

	return c.JSON(http.StatusOK, listResponse{
		Patients:   rows,
		Pagination: pagination.NewEnvelope(pg, total),
	})
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
	}

	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
		}
		h.logger.Error().Err(err).Str("patient_id", id.String()).Msg("get patient")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch patient"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	p, err := h.svc.CreatePatient(c.Request().Context(), &in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": verr.Msg})
		}
		h.logger.Error().Err(err).Msg("create patient")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create patient"})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
	}

	var in Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	p, err := h.svc.UpdatePatient(c.Request().Context(), id, &in)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
		}
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": verr.Msg})
		}
		h.logger.Error().Err(err).Str("patient_id", id.String()).Msg("update patient")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update patient"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
	}

	if _, err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
		}
		h.logger.Error().Err(err).Str("patient_id", id.String()).Msg("delete patient")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete patient"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient deleted successfully"})
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.GetDoctors(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list doctors")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch doctors"})
	}
	if doctors == nil {
		doctors = []*Doctor{}
	}
	return c.JSON(http.StatusOK, doctors)
}

func (h *Handler) ListTreatments(c echo.Context) error {
	treatments, err := h.svc.GetTreatments(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list treatments")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch treatments"})
	}
	if treatments == nil {
		treatments = []*Treatment{}
	}
	return c.JSON(http.StatusOK, treatments)
}
