// Package casreg validates CAS registry numbers.
package casreg

import (
	"fmt"
	"regexp"
)

var casPattern = regexp.MustCompile(`^\d{2,7}-\d{2}-\d$`)

// Valid reports whether s is a well-formed CAS registry number with a
// correct check digit. The check digit is the mod-10 sum of the other
// digits weighted by their position counted from the right.
func Valid(s string) bool {
	return Check(s) == nil
}

// Check returns nil if s is a valid CAS registry number, or an error
// describing the first problem found.
func Check(s string) error {
	if !casPattern.MatchString(s) {
		return fmt.Errorf("casreg: %q does not match NNNNNNN-NN-N", s)
	}
	var digits []int
	for _, r := range s {
		if r == '-' {
			continue
		}
		digits = append(digits, int(r-'0'))
	}
	check := digits[len(digits)-1]
	sum := 0
	for i, d := range digits[:len(digits)-1] {
		weight := len(digits) - 1 - i
		sum += weight * d
	}
	if sum%10 != check {
		return fmt.Errorf("casreg: %q check digit is %d, want %d", s, check, sum%10)
	}
	return nil
}
