package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validSelectorChars matches characters allowed in a simple CSS selector:
// alphanumerics, underscores, hyphens, class/id markers, combinators,
// attribute brackets, pseudo-class colons and quoted attribute values.
var validSelectorChars = regexp.MustCompile(`^[a-zA-Z0-9_\-.#:\[\]="'*>+~(), ]+$`)

// maxSelectorLen bounds selectors written into generated stylesheets.
const maxSelectorLen = 200

// ValidateSelector checks that a CSS selector can be written in front of a
// declaration block without breaking out of it:
//   - Not empty after trimming
//   - At most 200 characters
//   - No braces, semicolons, slashes or line breaks
//   - Does not start with a combinator or a digit
func ValidateSelector(selector string) error {
	s := strings.TrimSpace(selector)
	if s == "" {
		return fmt.Errorf("selector must not be empty")
	}

	if len(s) > maxSelectorLen {
		return fmt.Errorf("selector must be at most %d characters, got %d", maxSelectorLen, len(s))
	}

	if !validSelectorChars.MatchString(s) {
		return fmt.Errorf("selector %q contains invalid characters (braces, semicolons, slashes and line breaks are not allowed)", selector)
	}

	first := s[0]
	if strings.ContainsRune(">+~,", rune(first)) {
		return fmt.Errorf("selector must not start with a combinator, got %q", string(first))
	}
	if first >= '0' && first <= '9' {
		return fmt.Errorf("selector must not start with a digit, got %q", string(first))
	}

	return nil
}
