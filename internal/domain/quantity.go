// backend-go/internal/domain/quantity.go
package domain

import (
	"strconv"
	"strings"
)

// Quantity is a parsed recipe-ingredient quantity: a numeric magnitude and an
// optional unit token, e.g. "150g" -> {150, "g"}.
type Quantity struct {
	Value float64
	Unit  string
}

// ParseQuantity parses a quantity string. The string must begin with a
// non-negative numeric magnitude; whatever follows it is the unit. A string
// with no leading number fails with InvalidQuantityError.
func ParseQuantity(ingredient, raw string) (Quantity, error) {
	s := strings.TrimSpace(raw)

	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 || s[:end] == "." {
		return Quantity{}, &InvalidQuantityError{Ingredient: ingredient, Raw: raw}
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return Quantity{}, &InvalidQuantityError{Ingredient: ingredient, Raw: raw}
	}

	return Quantity{Value: value, Unit: strings.TrimSpace(s[end:])}, nil
}
