package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dkoleva/trackflow/internal/platform/logging"
)

// RedactHeaders flattens an http.Header into slog attributes for debug
// logging. Headers named in logging.SensitiveHeaders come out as
// "[REDACTED]"; everything else keeps its value, multi-value headers joined
// with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}
