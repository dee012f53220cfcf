package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"editais/internal/delivery/http/middleware"
	"editais/internal/delivery/http/response"
	domainerrors "editais/internal/domain/errors"
	"editais/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const queryDateLayout = "2006-01-02"

// TenderHandler serves the tender search, refresh and stats endpoints.
type TenderHandler struct {
	tenderUsecase usecase.TenderUsecase
}

// TenderHandlerParams holds dependencies for TenderHandler, injected by Fx.
type TenderHandlerParams struct {
	fx.In

	TenderUsecase usecase.TenderUsecase
}

// NewTenderHandler creates a new tender handler instance
func NewTenderHandler(params TenderHandlerParams) *TenderHandler {
	return &TenderHandler{tenderUsecase: params.TenderUsecase}
}

// ListTenders handles GET /api/tenders
func (h *TenderHandler) ListTenders(c echo.Context) error {
	input, err := parseSearchQuery(c)
	if err != nil {
		return err
	}

	tenders, err := h.tenderUsecase.SearchTenders(c.Request().Context(), input)
	if err != nil {
		return err
	}

	sortTenders(tenders, c.QueryParam("sortBy"), c.QueryParam("sortDir"))

	return response.Success(c, http.StatusOK, tenders, "")
}

// GetTender handles GET /api/tenders/:id
func (h *TenderHandler) GetTender(c echo.Context) error {
	tender, err := h.tenderUsecase.GetTender(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, tender, "")
}

type refreshResponse struct {
	Count    int  `json:"count"`
	Fallback bool `json:"fallback"`
}

// Refresh handles POST /api/tenders/refresh
func (h *TenderHandler) Refresh(c echo.Context) error {
	out, err := h.tenderUsecase.Refresh(c.Request().Context(), usecase.RefreshInput{
		UF:       c.QueryParam("uf"),
		Keywords: c.QueryParam("keywords"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, refreshResponse{
		Count:    out.Count,
		Fallback: out.Fallback,
	}, "Editais atualizados")
}

type statsResponse struct {
	TotalTenders  int64 `json:"totalTenders"`
	TotalValue    int64 `json:"totalValue"`
	AlertsSent    int64 `json:"alertsSent"`
	ActiveFilters int   `json:"activeFilters"`
}

// GetStats handles GET /api/stats
func (h *TenderHandler) GetStats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Usuário não autenticado")
	}

	stats, err := h.tenderUsecase.GetStats(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, statsResponse{
		TotalTenders:  stats.TotalTenders,
		TotalValue:    stats.TotalValue,
		AlertsSent:    stats.AlertsSent,
		ActiveFilters: stats.ActiveFilters,
	}, "")
}

func parseSearchQuery(c echo.Context) (usecase.SearchTendersInput, error) {
	input := usecase.SearchTendersInput{
		Keywords:    c.QueryParam("keywords"),
		States:      splitCommaList(c.QueryParam("states")),
		TenderTypes: splitCommaList(c.QueryParam("tenderTypes")),
	}

	var err error
	if input.MinValue, err = parseOptionalInt64(c.QueryParam("minValue")); err != nil {
		return input, domainerrors.ErrValidationFailed.WithDetails("minValue deve ser um número inteiro")
	}
	if input.MaxValue, err = parseOptionalInt64(c.QueryParam("maxValue")); err != nil {
		return input, domainerrors.ErrValidationFailed.WithDetails("maxValue deve ser um número inteiro")
	}
	if input.StartDate, err = parseOptionalDate(c.QueryParam("startDate")); err != nil {
		return input, domainerrors.ErrValidationFailed.WithDetails("startDate deve estar no formato AAAA-MM-DD")
	}
	if input.EndDate, err = parseOptionalDate(c.QueryParam("endDate")); err != nil {
		return input, domainerrors.ErrValidationFailed.WithDetails("endDate deve estar no formato AAAA-MM-DD")
	}

	return input, nil
}

func splitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if value := strings.TrimSpace(part); value != "" {
			values = append(values, value)
		}
	}

	return values
}

func parseOptionalInt64(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(queryDateLayout, raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
