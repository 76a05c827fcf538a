package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pizza/internal/pkg/errs"
)

// MinTextLength is the shortest accepted name or address.
const MinTextLength = 3

// NewText trims value and checks it holds at least MinTextLength characters.
func NewText(paramName, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(trimmed); n < MinTextLength {
		return "", errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d characters, at least %d required", n, MinTextLength))
	}
	return trimmed, nil
}
