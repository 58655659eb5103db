package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists HTTP header names (lowercase) carrying credentials.
// Both the masq layer here and the HTTP middleware's RedactHeaders consult
// this set, so it stays the single source of truth.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

var (
	// bearerPattern catches "Bearer <token>" appearing inside string values.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern catches raw header.payload.signature tokens. Each segment
	// must be at least 10 characters so dotted version strings pass through.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// apiKeyInlinePattern catches "api_key=..." and "apikey: ..." fragments
	// embedded in arbitrary strings.
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// fixedRedactOptions counts the masq options added beyond SensitiveHeaders
// (3 field names + 2 prefixes + 3 regexes).
const fixedRedactOptions = 8

// newRedactAttr builds the ReplaceAttr hook installed on every handler. It
// masks known sensitive field names outright and falls back to regex matching
// for secrets that leak into free-form string values.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveHeaders))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),

		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
