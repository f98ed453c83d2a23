package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogUsecases "github.com/jaras-platform/jaras/internal/application/catalog/usecases"
	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	"github.com/jaras-platform/jaras/internal/interfaces/http/handlers/testutil"
	"github.com/jaras-platform/jaras/internal/shared/errors"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockGetCatalogUC struct {
	result *dto.CatalogDTO
	err    error
	got    catalogUsecases.GetCatalogQuery
}

func (m *mockGetCatalogUC) Execute(ctx context.Context, query catalogUsecases.GetCatalogQuery) (*dto.CatalogDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockGetCatalogStatusUC struct {
	result *dto.CatalogStatusDTO
}

func (m *mockGetCatalogStatusUC) Execute(ctx context.Context) *dto.CatalogStatusDTO {
	return m.result
}

type mockReloadCatalogUC struct {
	result *dto.CatalogStatusDTO
	err    error
	calls  int
}

func (m *mockReloadCatalogUC) Execute(ctx context.Context) (*dto.CatalogStatusDTO, error) {
	m.calls++
	return m.result, m.err
}

func newTestCatalogHandler(get getCatalogUseCase, status getCatalogStatusUseCase, reload reloadCatalogUseCase) *CatalogHandler {
	return NewCatalogHandler(get, status, reload, testutil.NewMockLogger())
}

// =====================================================================
// GetCatalog
// =====================================================================

func TestCatalogHandler_GetCatalog_Success(t *testing.T) {
	uc := &mockGetCatalogUC{result: &dto.CatalogDTO{Lang: "ar", Currency: "ريال", UnitsCount: 12}}
	handler := newTestCatalogHandler(uc, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/catalog", nil)
	testutil.SetQueryParams(c, map[string]string{"units": "12", "include_vat": "true"})
	testutil.SetLangContext(c, i18n.AR)

	handler.GetCatalog(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, i18n.AR, uc.got.Lang)
	assert.Equal(t, 12, uc.got.UnitsCount)
	require.NotNil(t, uc.got.IncludeVat)
	assert.True(t, *uc.got.IncludeVat)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data dto.CatalogDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 12, data.UnitsCount)
}

func TestCatalogHandler_GetCatalog_DefaultsWithoutQuery(t *testing.T) {
	uc := &mockGetCatalogUC{result: &dto.CatalogDTO{}}
	handler := newTestCatalogHandler(uc, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/catalog", nil)
	handler.GetCatalog(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, i18n.EN, uc.got.Lang)
	assert.Nil(t, uc.got.IncludeVat)
	assert.Zero(t, uc.got.UnitsCount)
}

func TestCatalogHandler_GetCatalog_InvalidUnits(t *testing.T) {
	uc := &mockGetCatalogUC{}
	handler := newTestCatalogHandler(uc, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/catalog", nil)
	testutil.SetQueryParams(c, map[string]string{"units": "-3"})
	handler.GetCatalog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
	assert.Contains(t, resp.Error.Details, "units")
}

func TestCatalogHandler_GetCatalog_Unavailable(t *testing.T) {
	uc := &mockGetCatalogUC{err: errors.NewUnavailableError("Pricing catalog is unavailable")}
	handler := newTestCatalogHandler(uc, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/catalog", nil)
	handler.GetCatalog(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// =====================================================================
// Status and reload
// =====================================================================

func TestCatalogHandler_GetCatalogStatus_Failed(t *testing.T) {
	status := &mockGetCatalogStatusUC{result: &dto.CatalogStatusDTO{Status: "failed", Error: "db down"}}
	handler := newTestCatalogHandler(nil, status, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/catalog/status", nil)
	handler.GetCatalogStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data dto.CatalogStatusDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "failed", data.Status)
	assert.Equal(t, "db down", data.Error)
}

func TestCatalogHandler_ReloadCatalog_Success(t *testing.T) {
	loadedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	reload := &mockReloadCatalogUC{result: &dto.CatalogStatusDTO{Status: "ready", Plans: 4, Addons: 6, LoadedAt: &loadedAt}}
	handler := newTestCatalogHandler(nil, nil, reload)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/catalog/reload", nil)
	handler.ReloadCatalog(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, reload.calls)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Catalog reloaded successfully", resp.Message)
}

func TestCatalogHandler_ReloadCatalog_Failure(t *testing.T) {
	reload := &mockReloadCatalogUC{err: errors.NewUnavailableError("Pricing catalog is unavailable", "connection refused")}
	handler := newTestCatalogHandler(nil, nil, reload)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/catalog/reload", nil)
	handler.ReloadCatalog(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "connection refused", resp.Error.Details)
}

// =====================================================================
// Health
// =====================================================================

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(&mockGetCatalogStatusUC{result: &dto.CatalogStatusDTO{Status: "loading"}})

	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	handler.HealthCheck(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"status":"loading"`)
}
