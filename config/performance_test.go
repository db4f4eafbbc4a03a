package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderdesk-backend/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPerformanceLoggerOneEntryPerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	r := gin.New()
	r.Use(PerformanceLogger())
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/slow", func(c *gin.Context) {
		time.Sleep(SlowRequest + 50*time.Millisecond)
		c.Status(http.StatusOK)
	})

	cases := []struct {
		path  string
		level zapcore.Level
		msg   string
	}{
		{"/fast", zapcore.InfoLevel, "request"},
		{"/slow", zapcore.WarnLevel, "slow request"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			logs.TakeAll()
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))

			entries := logs.TakeAll()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.level, entries[0].Level)
			assert.Equal(t, tc.msg, entries[0].Message)
			assert.Equal(t, tc.path, entries[0].ContextMap()["path"])
		})
	}
}
