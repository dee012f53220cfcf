package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"editais/internal/infra/persistence/memory"
	"editais/internal/usecase"
	"editais/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilterFixture() (*FilterHandler, usecase.FilterUsecase) {
	store := memory.NewStore()
	svc := impl.NewFilterService(impl.FilterServiceParams{
		FilterRepo: memory.NewFilterRepository(store),
		TxManager:  memory.NewTransactionManager(store),
	})

	return NewFilterHandler(FilterHandlerParams{FilterUsecase: svc}), svc
}

func postFilter(h *FilterHandler, userID uuid.UUID, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/filters", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return rec, h.CreateFilter(c)
}

func TestCreateFilter_OmittedIsActiveDefaultsToActive(t *testing.T) {
	h, svc := newFilterFixture()
	userID := uuid.New()

	rec, err := postFilter(h, userID, `{"keywords":"escola"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	active, err := svc.GetActiveFilter(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "escola", active.Keywords)
	assert.True(t, active.IsActive)
}

func TestCreateFilter_ExplicitInactiveIsRespected(t *testing.T) {
	h, svc := newFilterFixture()
	userID := uuid.New()

	rec, err := postFilter(h, userID, `{"keywords":"escola","isActive":false}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	filters, err := svc.GetFilters(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, filters, 1)
	assert.False(t, filters[0].IsActive)
}
