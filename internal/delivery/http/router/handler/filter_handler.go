package handler

import (
	"net/http"

	"editais/internal/delivery/http/middleware"
	"editais/internal/delivery/http/response"
	domainerrors "editais/internal/domain/errors"
	"editais/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FilterHandler serves the saved-filter endpoints.
type FilterHandler struct {
	filterUsecase usecase.FilterUsecase
}

// FilterHandlerParams holds dependencies for FilterHandler, injected by Fx.
type FilterHandlerParams struct {
	fx.In

	FilterUsecase usecase.FilterUsecase
}

// NewFilterHandler creates a new filter handler instance
func NewFilterHandler(params FilterHandlerParams) *FilterHandler {
	return &FilterHandler{filterUsecase: params.FilterUsecase}
}

type filterRequest struct {
	Keywords    string `json:"keywords"`
	States      string `json:"states"`
	TenderTypes string `json:"tenderTypes"`
	MinValue    *int64 `json:"minValue"`
	MaxValue    *int64 `json:"maxValue"`
	IsActive    *bool  `json:"isActive"`
}

// A filter saved without an explicit isActive becomes the active one.
func (req *filterRequest) isActive() bool {
	if req.IsActive == nil {
		return true
	}

	return *req.IsActive
}

// CreateFilter handles POST /api/filters
func (h *FilterHandler) CreateFilter(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Usuário não autenticado")
	}

	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Corpo da requisição inválido")
	}

	filter, err := h.filterUsecase.CreateFilter(c.Request().Context(), userID, usecase.CreateFilterInput{
		Keywords:    req.Keywords,
		States:      req.States,
		TenderTypes: req.TenderTypes,
		MinValue:    req.MinValue,
		MaxValue:    req.MaxValue,
		IsActive:    req.isActive(),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, filter, "Filtro criado com sucesso")
}

// ListFilters handles GET /api/filters
func (h *FilterHandler) ListFilters(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Usuário não autenticado")
	}

	filters, err := h.filterUsecase.GetFilters(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, filters, "")
}

// GetActiveFilter handles GET /api/filters/active
func (h *FilterHandler) GetActiveFilter(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Usuário não autenticado")
	}

	filter, err := h.filterUsecase.GetActiveFilter(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, filter, "")
}

// UpdateFilter handles PUT /api/filters/:id
func (h *FilterHandler) UpdateFilter(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Usuário não autenticado")
	}

	filterID, err := parseFilterID(c)
	if err != nil {
		return err
	}

	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Corpo da requisição inválido")
	}

	filter, err := h.filterUsecase.UpdateFilter(c.Request().Context(), userID, filterID, usecase.UpdateFilterInput{
		Keywords:    req.Keywords,
		States:      req.States,
		TenderTypes: req.TenderTypes,
		MinValue:    req.MinValue,
		MaxValue:    req.MaxValue,
		IsActive:    req.isActive(),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, filter, "Filtro atualizado com sucesso")
}

// DeleteFilter handles DELETE /api/filters/:id
func (h *FilterHandler) DeleteFilter(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Usuário não autenticado")
	}

	filterID, err := parseFilterID(c)
	if err != nil {
		return err
	}

	if err := h.filterUsecase.DeleteFilter(c.Request().Context(), userID, filterID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Filtro removido com sucesso")
}

func parseFilterID(c echo.Context) (uuid.UUID, error) {
	filterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id do filtro inválido")
	}

	return filterID, nil
}
