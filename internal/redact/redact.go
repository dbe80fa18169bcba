// Package redact scrubs credentials, tokens, connection strings and other
// sensitive fragments from text before it is logged.
package redact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	JWTPlaceholder        = "[REDACTED_JWT]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; earlier rules see the raw text.
var rules = []rule{
	// user:password@ in database URLs
	{regexp.MustCompile(`(?i)(postgres(?:ql)?|sqlite|mysql)://[^@\s]+@`), CredentialPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|token)\s*[:=]\s*['"]?[^'"&\s]{3,}`), CredentialPlaceholder},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), JWTPlaceholder},
	// Drivers echo statements in upper case; lower-case prose like "failed to update" is left alone.
	{regexp.MustCompile(`\b(SELECT|INSERT INTO|UPDATE|DELETE FROM)\s[^;]*`), SQLPlaceholder},
	{regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`), EmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), PathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Email masks the local part of an address, keeping its first character and
// the domain so log lines stay correlatable.
func Email(addr string) string {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok {
		return "***"
	}
	if local == "" {
		return "***@" + domain
	}
	first, _ := utf8.DecodeRuneInString(local)
	return string(first) + "***@" + domain
}
