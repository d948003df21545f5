package logger

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	// Standalone 11-to-14 digit runs: whatsapp numbers (11 or 13 digits
	// with country code) and CNPJs (14 digits).
	digitRunRe = regexp.MustCompile(`\b[0-9]{11,14}\b`)
)

func redactPIIValue(key, val string) string {
	key = strings.ToLower(key)
	switch {
	case strings.Contains(key, "email"):
		return RedactEmail(val)
	case strings.Contains(key, "whatsapp"), strings.Contains(key, "fone"), strings.Contains(key, "phone"):
		return RedactDigits(val)
	case strings.Contains(key, "cnpj"):
		return RedactDigits(val)
	}
	// Generic fields: scrub any embedded emails or long digit runs.
	val = emailRe.ReplaceAllStringFunc(val, RedactEmail)
	return digitRunRe.ReplaceAllStringFunc(val, RedactDigits)
}

// RedactEmail masks an email address for safe logging.
// "john.doe@example.com" → "jo***@example.com"
// Short local parts (≤2 chars) are fully masked: "ab@example.com" → "***@example.com"
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	name := parts[0]
	if len(name) > 2 {
		return name[:2] + "***@" + parts[1]
	}
	return "***@" + parts[1]
}

// RedactDigits masks the middle of a digit identifier, keeping enough of
// each end to correlate log lines.
// "5511999998888" → "55*********888", "12345678000199" → "12**********199"
func RedactDigits(s string) string {
	if len(s) <= 5 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-5) + s[len(s)-3:]
}
