package phone

import "strings"

// Normalize strips everything but digits from a phone number,
// preserving a single leading "+" if present.
func Normalize(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	plus := strings.HasPrefix(trimmed, "+")
	var b strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if plus {
		return "+" + b.String()
	}
	return b.String()
}

// IsValidSerbian reports whether the value is a plausible Serbian phone
// number: either international "+381" followed by 8-9 digits not starting
// with zero, or domestic "0" followed by 8-9 digits not starting with zero.
func IsValidSerbian(value string) bool {
	normalized := Normalize(value)
	if normalized == "" {
		return false
	}

	if strings.HasPrefix(normalized, "+") {
		if !strings.HasPrefix(normalized, "+381") {
			return false
		}
		return validDigits(normalized[4:])
	}

	if !strings.HasPrefix(normalized, "0") {
		return false
	}
	return validDigits(normalized[1:])
}

func validDigits(rest string) bool {
	if len(rest) < 8 || len(rest) > 9 {
		return false
	}
	if rest[0] == '0' {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return true
}
