package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhone cleans separators from a phone number and validates it
// against E.164. Returns the normalized "+<country><subscriber>" form.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")

	if !strings.HasPrefix(stripped, "+") {
		stripped = "+" + stripped
	}

	if !e164Pattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format: %q", phone)
	}

	return stripped, nil
}
