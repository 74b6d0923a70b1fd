package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-web/core/middleware/rayid"
	"catalog-web/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fetcher is a mock catalog.Fetcher.
type fetcher struct {
	mock.Mock
}

func (m *fetcher) Load(ctx context.Context, params catalog.RouteParams) (catalog.Result[catalog.Item], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(catalog.Result[catalog.Item]), args.Error(1)
}

func newTestApp(t *testing.T, f catalog.Fetcher[catalog.Item]) *fiber.App {
	t.Helper()
	pages, err := catalog.NewPages()
	require.NoError(t, err)

	app := fiber.New()
	app.Use(rayid.New())
	catalog.NewHandler(f, pages, zap.NewNop()).RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, accept string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandleGetItem(t *testing.T) {
	widget := catalog.Item{"id": "42", "name": "Widget", "tags": []any{"blue"}}

	t.Run("HTMLPage", func(t *testing.T) {
		f := new(fetcher)
		f.On("Load", mock.Anything, catalog.RouteParams{"item": "42"}).
			Return(catalog.Result[catalog.Item]{Item: widget}, nil).Once()

		resp, body := doRequest(t, newTestApp(t, f), "/catalog/42", "")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, body, "<title>Widget</title>")
		assert.Contains(t, body, `data-item="42"`)
		assert.Contains(t, body, `[&#34;blue&#34;]`)
		f.AssertExpectations(t)
	})

	t.Run("JSON", func(t *testing.T) {
		f := new(fetcher)
		f.On("Load", mock.Anything, catalog.RouteParams{"item": "42"}).
			Return(catalog.Result[catalog.Item]{Item: widget}, nil).Once()

		resp, body := doRequest(t, newTestApp(t, f), "/catalog/42", "application/json")
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"data": {"id": "42", "name": "Widget", "tags": ["blue"]}}`, body)
	})

	t.Run("UpstreamErrorJSON", func(t *testing.T) {
		f := new(fetcher)
		f.On("Load", mock.Anything, catalog.RouteParams{"item": "missing"}).
			Return(catalog.Result[catalog.Item]{Err: catalog.NewUpstreamError(404)}, nil).Once()

		resp, body := doRequest(t, newTestApp(t, f), "/catalog/missing", "application/json")
		assert.Equal(t, 404, resp.StatusCode)

		var result catalog.ErrorResult
		require.NoError(t, json.Unmarshal([]byte(body), &result))
		assert.Equal(t, 404, result.Status)
		assert.Equal(t, "UpstreamError", result.Error.Kind)
		assert.Equal(t, "Could not load the item", result.Error.Message)
	})

	t.Run("UpstreamErrorHTML", func(t *testing.T) {
		f := new(fetcher)
		f.On("Load", mock.Anything, catalog.RouteParams{"item": "x"}).
			Return(catalog.Result[catalog.Item]{Err: catalog.NewUpstreamError(503)}, nil).Once()

		resp, body := doRequest(t, newTestApp(t, f), "/catalog/x", "text/html")
		assert.Equal(t, 503, resp.StatusCode)
		assert.Contains(t, body, `data-status="503"`)
		assert.Contains(t, body, "Could not load the item")
	})

	t.Run("UnhandledErrorReachesFiber", func(t *testing.T) {
		f := new(fetcher)
		f.On("Load", mock.Anything, mock.Anything).
			Return(catalog.Result[catalog.Item]{}, &catalog.DecodeError{Reason: `missing "data" field`}).Once()

		resp, body := doRequest(t, newTestApp(t, f), "/catalog/x", "application/json")
		assert.Equal(t, 500, resp.StatusCode)
		assert.NotContains(t, body, "Could not load the item")
	})

	t.Run("RawParamPassedThrough", func(t *testing.T) {
		f := new(fetcher)
		f.On("Load", mock.Anything, catalog.RouteParams{"item": "blue%20chair"}).
			Return(catalog.Result[catalog.Item]{Item: catalog.Item{}}, nil).Once()

		resp, _ := doRequest(t, newTestApp(t, f), "/catalog/blue%20chair", "application/json")
		assert.Equal(t, 200, resp.StatusCode)
		f.AssertExpectations(t)
	})
}

func TestHandleGetItem_EndToEnd(t *testing.T) {
	b := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/catalog/42":
			respond(200, `{"data": {"id": "42", "name": "Widget"}}`)(w, r)
		case "/catalog/broken":
			respond(200, `{"items": []}`)(w, r)
		default:
			respond(404, `{"message": "not found"}`)(w, r)
		}
	})

	feature, err := catalog.NewFeature(b.URL, b.Client(), zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, body := doRequest(t, app, "/catalog/42", "application/json")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"data": {"id": "42", "name": "Widget"}}`, body)

	resp, body = doRequest(t, app, "/catalog/missing", "application/json")
	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{"status": 404, "error": {"kind": "UpstreamError", "status": 404, "message": "Could not load the item"}}`, body)

	resp, _ = doRequest(t, app, "/catalog/broken", "application/json")
	assert.Equal(t, 500, resp.StatusCode)

	assert.Equal(t, "catalog", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Loader())
}

func TestUpstreamError(t *testing.T) {
	var err error = catalog.NewUpstreamError(500)

	var upstreamErr *catalog.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 500, upstreamErr.Status)
	assert.Equal(t, "Could not load the item", err.Error())
}
