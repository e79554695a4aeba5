// Package redact scrubs credentials and other sensitive values out of
// error messages before they are logged or returned to API clients.
package redact

import "regexp"

// rule pairs a pattern with its replacement. Replacements may reference
// capture groups so that key names survive while their values are masked.
type rule struct {
	re   *regexp.Regexp
	repl string
}

// rules run in order. The URL rule must come before the host rules so a
// connection URL is consumed whole, credentials and endpoint together.
var rules = []rule{
	// Postgres and Redis connection URLs, including query parameters.
	{regexp.MustCompile(`\b(?:postgres(?:ql)?|rediss?)://[^\s"']+`), "[REDACTED_DSN]"},
	// Assignments such as password=..., jwt_secret=..., TASKFLOW_AUTH_JWT_SECRET=...
	{regexp.MustCompile(`(?i)([\w-]*(?:password|passwd|secret|token)[\w-]*)\s*[=:]\s*[^\s&,;]+`), "${1}=[REDACTED]"},
	// Compact JWTs: two base64url JSON segments plus a signature.
	{regexp.MustCompile(`\beyJ[\w-]+\.eyJ[\w-]+\.[\w-]+`), "[REDACTED_JWT]"},
	// Bearer credentials that are not well-formed JWTs.
	{regexp.MustCompile(`(?i)\b(bearer)\s+[A-Za-z0-9._~+/=-]+`), "${1} [REDACTED]"},
	// bcrypt password hashes.
	{regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`), "[REDACTED_HASH]"},
	// Email addresses, which identify accounts.
	{regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`), "[REDACTED_EMAIL]"},
	// Absolute paths under common system roots. Request paths such as
	// /api/v1/tasks are left alone.
	{regexp.MustCompile(`/(?:home|etc|var|usr|tmp|opt|srv|root|app)(?:/[\w.-]+)+`), "[REDACTED_PATH]"},
	// Keyword form used by libpq-style connection strings.
	{regexp.MustCompile(`(?i)\b(host|hostaddr)=[^\s,]+`), "${1}=[REDACTED_HOST]"},
	// host:port and ip:port endpoints surfaced by dial errors.
	{regexp.MustCompile(`\b(?:(?:\d{1,3}\.){3}\d{1,3}|(?:[A-Za-z][\w-]*\.)+[A-Za-z][\w-]*):\d{2,5}\b`), "[REDACTED_HOST]"},
}

// String returns s with every sensitive value replaced by a placeholder.
func String(s string) string {
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

// Error redacts err's message. A nil error yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
