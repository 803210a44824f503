package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	maxLogBodySize     = 1 << 12 // 4 KB
	maxRequestBodySize = 1 << 20 // 1 MB, multipart uploads excluded
)

// secretFields never reach the log in clear text.
var secretFields = []string{"password", "new_password"}

func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request != nil && c.Request.Body != nil && c.Request.Body != http.NoBody {
			ct := c.GetHeader("Content-Type")
			if strings.HasPrefix(ct, "multipart/form-data") {
				body = "<multipart/form-data omitted>"
			} else {
				// only the logged prefix is buffered; handlers still read the
				// whole stream
				limited := http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodySize)
				head, _ := io.ReadAll(io.LimitReader(limited, maxLogBodySize+1))
				c.Request.Body = &prefixedBody{
					Reader: io.MultiReader(bytes.NewReader(head), limited),
					Closer: limited,
				}
				body = maskBody(head)
			}
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

type prefixedBody struct {
	io.Reader
	io.Closer
}

// maskBody replaces secret fields at any depth of a JSON body. Anything that
// does not parse, including a body cut at maxLogBodySize, is dropped if it
// might carry a secret.
func maskBody(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil || dec.More() {
		if bytes.Contains(bytes.ToLower(raw), []byte("password")) {
			return "<unparsed body omitted>"
		}
		return truncate(string(raw))
	}

	if !maskSecrets(doc) {
		return truncate(string(raw))
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return "<unparsed body omitted>"
	}

	return truncate(string(out))
}

// maskSecrets rewrites secret keys in place and reports whether any were found.
func maskSecrets(v any) bool {
	masked := false
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if isSecretField(k) {
				t[k] = "***"
				masked = true
				continue
			}
			if maskSecrets(child) {
				masked = true
			}
		}
	case []any:
		for _, child := range t {
			if maskSecrets(child) {
				masked = true
			}
		}
	}
	return masked
}

// json binding matches keys case-insensitively, so masking does too
func isSecretField(k string) bool {
	for _, f := range secretFields {
		if strings.EqualFold(k, f) {
			return true
		}
	}
	return false
}

func truncate(s string) string {
	if len(s) > maxLogBodySize {
		return s[:maxLogBodySize] + "...(truncated)"
	}
	return s
}
