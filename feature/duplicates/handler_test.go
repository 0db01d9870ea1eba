package duplicates

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, _ := newTestService(t)

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleGetDuplicates(t *testing.T) {
	app := setupTestApp(t)

	t.Run("Missing accounts", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/duplicates", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("JSON", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/duplicates?accounts=robin&friends=alex&scrap=true", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var report struct {
			Plan struct {
				Summary struct {
					Allocated int `json:"allocated"`
					Pairs     int `json:"pairs"`
				} `json:"summary"`
			} `json:"plan"`
		}
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Equal(t, 2, report.Plan.Summary.Allocated)
		assert.Equal(t, 1, report.Plan.Summary.Pairs)
	})

	t.Run("Text", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/duplicates?accounts=robin&list=true&format=text", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Duplicates by name [4]")
	})
}

func TestHandleRefreshCatalog(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/refresh", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"items":8,"uniques":5}`, string(body))
}
