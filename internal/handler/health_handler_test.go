package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error {
	return p.err
}

func healthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func TestHealthHandler(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		router := healthRouter(NewHealthHandler(map[string]Pinger{
			"database": fakePinger{},
			"redis":    fakePinger{},
		}))

		w := serve(router, http.MethodGet, "/health", nil)
		assertStatus(t, w, http.StatusOK)
		body := decode[HealthResponse](t, w)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "healthy", body.Services["redis"])

		assertStatus(t, serve(router, http.MethodGet, "/ready", nil), http.StatusOK)
	})

	t.Run("redis down", func(t *testing.T) {
		router := healthRouter(NewHealthHandler(map[string]Pinger{
			"database": fakePinger{},
			"redis":    fakePinger{err: errors.New("dial tcp: connection refused")},
		}))

		w := serve(router, http.MethodGet, "/health", nil)
		assertStatus(t, w, http.StatusServiceUnavailable)
		body := decode[HealthResponse](t, w)
		assert.Equal(t, "unhealthy", body.Services["redis"])
		assert.Equal(t, "healthy", body.Services["database"])

		assertStatus(t, serve(router, http.MethodGet, "/ready", nil), http.StatusServiceUnavailable)
		assertStatus(t, serve(router, http.MethodGet, "/live", nil), http.StatusOK)
	})
}
