package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	maxLogBodySize     = 1 << 12 // 4 KB
	maxRequestBodySize = 1 << 20 // 1 MB
	masked             = "***"
)

// replayBody hands the logged prefix back to the handler ahead of the unread remainder.
type replayBody struct {
	io.Reader
	io.Closer
}

var sensitiveKeys = []string{"password", "token", "secret"}

func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec, mDuration *prometheus.HistogramVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request != nil && c.Request.Body != nil {
			orig := http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodySize)
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, io.LimitReader(orig, maxLogBodySize))
			c.Request.Body = replayBody{
				Reader: io.MultiReader(bytes.NewReader(buf.Bytes()), orig),
				Closer: orig,
			}
			body = MaskBody(buf.Bytes())
		}

		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}
		if mDuration != nil {
			mDuration.WithLabelValues(c.Request.Method, c.FullPath(), strconv.Itoa(status)).Observe(elapsed.Seconds())
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// MaskBody replaces the values of password-like JSON keys. Bodies that are not a
// JSON object are dropped entirely.
func MaskBody(raw []byte) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "<unparsed body omitted>"
	}
	maskMap(obj)

	out, err := json.Marshal(obj)
	if err != nil {
		return "<unparsed body omitted>"
	}
	return string(out)
}

func maskMap(m map[string]any) {
	for k, v := range m {
		if isSensitive(k) {
			m[k] = masked
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			maskMap(nested)
		}
	}
}

func isSensitive(key string) bool {
	k := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}
