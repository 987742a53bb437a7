package cmd_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant/cmd"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T) *cmd.CompositionRoot {
	t.Helper()
	cfg := cmd.DefaultConfig()
	cfg.DeliveryTimeUnit = 10 * time.Millisecond

	root, err := cmd.NewCompositionRoot(cfg, nil, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = root.Close(ctx)
	})
	return root
}

func TestCompositionRoot_HTTPServerIsWired(t *testing.T) {
	root := newRoot(t)
	e := root.CreateHTTPServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"items":[{"name":"Soup","quantity":1}],"distance_km":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/1/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"placed"`)

	assert.Equal(t, 1, root.Coordinator().Stats().OrdersPlaced)
}

func TestCompositionRoot_JournalIsInstrumented(t *testing.T) {
	root := newRoot(t)
	handler := root.CreateGetFleetStatusQueryHandler()

	e := root.CreateHTTPServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"items":[{"name":"Soup","quantity":1}],"distance_km":2}`))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `delivery_events_total{kind="placed"} 1`)

	response, err := handler.Handle(context.Background(), queries.NewGetFleetStatusQuery())
	require.NoError(t, err)
	assert.Equal(t, 1, response.Stats.Queued)
}

func TestCompositionRoot_GRPCServerRegistersService(t *testing.T) {
	root := newRoot(t)
	server := root.CreateGRPCServer()
	defer server.Stop()

	info := server.GetServiceInfo()
	require.Contains(t, info, "restaurant.v1.RestaurantService")
	assert.Len(t, info["restaurant.v1.RestaurantService"].Methods, 8)
}

func TestCompositionRoot_JobManagerStarts(t *testing.T) {
	root := newRoot(t)
	manager := root.CreateJobManager()

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
