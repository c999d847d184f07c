package match

import (
	"fmt"
	"regexp"
	"strings"
)

// reNonDigit strips everything that is not an ASCII digit from raw codes.
// Initialized once at startup and never mutated.
var reNonDigit = regexp.MustCompile(`\D+`)

// NormalizeCode reduces a raw classification code to its digit string.
// An absent value yields the empty string.
func NormalizeCode(raw any) string {
	if raw == nil {
		return ""
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", raw))
	return reNonDigit.ReplaceAllString(s, "")
}

// IsValidFixed reports whether codeDigits is exactly length digits long.
func IsValidFixed(codeDigits string, length int) bool {
	return len(codeDigits) == length && allDigits(codeDigits)
}

// IsValidMinPrefix reports whether codeDigits carries at least length digits,
// i.e. its length-digit prefix is itself a complete code.
func IsValidMinPrefix(codeDigits string, length int) bool {
	return len(codeDigits) >= length && allDigits(codeDigits[:length])
}

// PrefixMatch returns 1 when both codes have at least k digits and their
// first k digits are identical. Non-increasing in k for a fixed code pair.
func PrefixMatch(gtDigits, predDigits string, k int) int {
	if len(gtDigits) < k || len(predDigits) < k {
		return 0
	}
	if gtDigits[:k] == predDigits[:k] {
		return 1
	}
	return 0
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
