// Package redact removes sensitive information from strings before they are
// logged or returned in error responses. It covers credentials, tokens,
// patient contact details (email addresses and phone numbers), SMTP hosts,
// file paths and stack trace fragments that transport errors tend to carry.
package redact

import (
	"regexp"
)

// Redaction placeholders.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedPhonePlaceholder      = "[REDACTED_PHONE]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order. Token and email rules run before the host
// rule so their domains are not partially replaced first.
var rules = []rule{
	// SMTP URLs and other user:pass@host forms
	{regexp.MustCompile(`(?i)\b(smtps?|postgres|mysql|redis)://[^@\s]+@`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd|pass)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`), RedactedJWTPlaceholder},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|client[_-]?secret|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	// International numbers and Venezuelan local numbers such as 0412-555-1234.
	{regexp.MustCompile(`\+\d[\d\s\-()]{7,}\d`), RedactedPhonePlaceholder},
	{regexp.MustCompile(`\b0\d{3}[\s-]?\d{3}[\s-]?\d{4}\b`), RedactedPhonePlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		RedactedHostPlaceholder,
	},
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
