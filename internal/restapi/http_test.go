package restapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"penguins.dashboard/internal/app"
	"penguins.dashboard/internal/appconf"
	"penguins.dashboard/internal/logging"
	"penguins.dashboard/internal/metrics"
	"penguins.dashboard/internal/models"
	"penguins.dashboard/internal/penguins"
)

// createTestApi creates a RestAPI over the CSV fixture with rate limiting disabled.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	dataset, err := penguins.Load(context.Background(), filepath.Join("..", "..", "testdata", "penguins.csv"))
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			RateLimit: -1,
		},
		Logger:  slog.Default(),
		Dataset: dataset,
		Metrics: metrics.New(),
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(newTestRouter(api))
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// entryOf pulls data.entry out of a decoded response.
func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

func newTestRouter(api *RestAPI) *httprouter.Router {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.SendNotFound)
	api.SetRoutes(router)
	return router
}

func serveRecorder(handler http.Handler, endpoint string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, endpoint, nil))
	return recorder
}
