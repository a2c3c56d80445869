package webui

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"penguins.dashboard/internal/app"
	"penguins.dashboard/internal/appconf"
	"penguins.dashboard/internal/metrics"
	"penguins.dashboard/internal/penguins"
)

func createTestWebUI(t *testing.T) *WebUI {
	t.Helper()

	dataset, err := penguins.Load(context.Background(), filepath.Join("..", "..", "testdata", "penguins.csv"))
	require.NoError(t, err)

	ui, err := NewWebUI(&app.Application{
		Config:  appconf.Config{Env: appconf.Test},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Dataset: dataset,
		Metrics: metrics.New(),
	})
	require.NoError(t, err)
	return ui
}

// serve routes a GET request through a router holding only the web UI.
func serve(t *testing.T, ui *WebUI, endpoint string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	router := httprouter.New()
	ui.SetRoutes(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, endpoint, nil))
	return recorder, recorder.Body.String()
}
