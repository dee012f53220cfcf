package handler

import (
	"net/http"

	"editais/internal/delivery/http/middleware"
	"editais/internal/delivery/http/response"
	"editais/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandler serves the alert-send and history endpoints.
type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
}

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUsecase usecase.AlertUsecase
}

// NewAlertHandler creates a new alert handler instance
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{alertUsecase: params.AlertUsecase}
}

type sendAlertRequest struct {
	TenderIDs []string `json:"tenderIds" validate:"required,min=1"`
}

// SendAlert handles POST /api/alerts/send
func (h *AlertHandler) SendAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Usuário não autenticado")
	}

	var req sendAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	history, err := h.alertUsecase.SendAlert(c.Request().Context(), userID, usecase.SendAlertInput{
		TenderIDs: req.TenderIDs,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, history, "Alerta enviado com sucesso")
}

// GetHistory handles GET /api/alerts/history
func (h *AlertHandler) GetHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Usuário não autenticado")
	}

	histories, err := h.alertUsecase.GetHistory(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, histories, "")
}
