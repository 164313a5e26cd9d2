package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndmedia/internal/domain"
	"ndmedia/internal/util"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger())
	app.Get("/boom", handler)
	return app
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"view not found", domain.NewViewNotFoundError("01J"), http.StatusNotFound, "VIEW_NOT_FOUND"},
		{"invalid option", domain.NewInvalidOptionError(7, 4), http.StatusBadRequest, "INVALID_OPTION"},
		{"unknown section", domain.NewUnknownSectionError("footer"), http.StatusBadRequest, "UNKNOWN_SECTION"},
		{"feature unavailable", domain.NewFeatureUnavailableError("quiz", domain.PageHome), http.StatusConflict, "FEATURE_UNAVAILABLE"},
		{"internal", domain.NewInternalError("store down", errors.New("dial tcp")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain error", errors.New("unexpected"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"fiber error", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return domain.ValidationErrors{domain.NewMissingFieldError("option")}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ValidationErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "option", body.Errors[0].Field)
}

func TestErrorHandler_SingleValidationError(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return domain.NewValidationError("bad body")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidateViewID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	vm := NewValidationMiddleware()
	app.Get("/views/:viewID", vm.ValidateViewID(), func(c *fiber.Ctx) error {
		return c.SendString(ViewID(c))
	})

	id := util.NewULID()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/views/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id, string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/views/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
