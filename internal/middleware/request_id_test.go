package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestIDRouter echoes the request id seen by the handler.
func requestIDRouter(seen *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/content/:id", func(c *gin.Context) {
		*seen = append(*seen, middleware.GetRequestID(c))
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
		wantUUID bool
	}{
		{name: "missing header gets a uuid", header: "", wantUUID: true},
		{name: "client id is kept", header: "client-provided-id-12345", wantKept: true},
		{name: "client id at the length limit is kept", header: strings.Repeat("a", 128), wantKept: true},
		{name: "oversized client id is replaced", header: strings.Repeat("x", 129), wantUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []string
			router := requestIDRouter(&seen)

			req := httptest.NewRequest(http.MethodGet, "/content/c1", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			got := w.Header().Get(middleware.RequestIDHeader)
			require.Len(t, seen, 1)
			assert.Equal(t, got, seen[0], "handler and response agree")

			if tt.wantKept {
				assert.Equal(t, tt.header, got)
			}
			if tt.wantUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestID_EachRequestGetsItsOwnID(t *testing.T) {
	var seen []string
	router := requestIDRouter(&seen)

	for i := 0; i < 3; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/content/c1", nil))
	}

	require.Len(t, seen, 3)
	assert.NotEqual(t, seen[0], seen[1])
	assert.NotEqual(t, seen[1], seen[2])
	assert.NotEqual(t, seen[0], seen[2])
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "not set", value: nil, want: ""},
		{name: "string", value: "req-1", want: "req-1"},
		{name: "wrong type", value: 12345, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tt.value != nil {
				c.Set(middleware.RequestIDKey, tt.value)
			}
			assert.Equal(t, tt.want, middleware.GetRequestID(c))
		})
	}
}

// captureLog routes the default logger into a buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Setup(&buf, "json", "debug")
	t.Cleanup(func() { logger.Setup(io.Discard, "json", "info") })
	return &buf
}

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		identity  *domain.Identity
		wantLevel string
		wantUser  string
	}{
		{name: "success is info", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error is warn", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error is error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "signed-in caller is tagged", status: http.StatusCreated, wantLevel: "INFO",
			identity: &domain.Identity{UserID: "u-7", Role: domain.RoleUser}, wantUser: "u-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(middleware.RequestID(), middleware.AccessLog())
			router.Use(func(c *gin.Context) {
				if tt.identity != nil {
					c.Set(middleware.IdentityKey, tt.identity)
				}
				c.Next()
			})
			router.GET("/content/:id", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/content/abc", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-42")
			router.ServeHTTP(httptest.NewRecorder(), req)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, "HTTP request", line["msg"])
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "req-42", line["request_id"])
			assert.Equal(t, http.MethodGet, line["method"])
			assert.Equal(t, "/content/abc", line["path"])
			assert.Equal(t, float64(tt.status), line["status"])

			if tt.wantUser == "" {
				assert.NotContains(t, line, "user_id")
			} else {
				assert.Equal(t, tt.wantUser, line["user_id"])
			}
		})
	}
}
