package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feewhiz/feewhiz/feedata"
	"github.com/feewhiz/feewhiz/internal/database"
	"github.com/feewhiz/feewhiz/internal/ratetable"
	"github.com/feewhiz/feewhiz/internal/repository"
)

type healthResponse struct {
	Status          string   `json:"status"`
	Platforms       []string `json:"platforms"`
	Unavailable     []string `json:"unavailable"`
	Database        string   `json:"database"`
	StoredPlatforms int      `json:"stored_platforms"`
}

func TestHealthHandler(t *testing.T) {
	cases := []struct {
		name        string
		platforms   []string
		code        int
		status      string
		unavailable int
	}{
		{"all loaded", []string{"paypal", "stripe", "square", "adyen", "braintree", "authorize-net"}, http.StatusOK, "healthy", 0},
		{"some missing", []string{"paypal", "stripe"}, http.StatusOK, "degraded", 4},
		{"nothing loaded", nil, http.StatusServiceUnavailable, "unhealthy", 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupRouter(partialDispatcher(t, tc.platforms...))
			w := get(router, "/health")
			assert.Equal(t, tc.code, w.Code)

			var resp healthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.status, resp.Status)
			assert.Len(t, resp.Platforms, len(tc.platforms))
			assert.Len(t, resp.Unavailable, tc.unavailable)
			assert.Empty(t, resp.Database)
		})
	}
}

// Integration test: requires running database
func TestHealthHandler_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := getTestPool(t)
	if pool == nil {
		t.Skip("no database available")
	}
	defer pool.Close()

	database.MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { database.MigrationsDir = "file://migrations" })

	dbURL := getTestDBURL()
	_ = database.RollbackMigrations(dbURL)
	require.NoError(t, database.RunMigrations(dbURL))
	t.Cleanup(func() { _ = database.RollbackMigrations(dbURL) })
	require.NoError(t, database.SeedRateTables(context.Background(), pool, feedata.Documents))

	repo := repository.NewRateTableRepository(pool)
	dispatcher, err := ratetable.Load(context.Background(), ratetable.RepositorySource{Store: repo}, ratetable.Options{Strict: true})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", NewHealthHandler(dispatcher, repo).Health)

	w := get(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "connected", resp.Database)
	assert.Equal(t, 6, resp.StoredPlatforms)
}
