package casreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	valid := []string{
		"7732-18-5", // water
		"64-17-5",   // ethanol
		"71-43-2",   // benzene
		"7440-44-0", // carbon
		"124-38-9",  // carbon dioxide
		"2051-24-3", // decachlorobiphenyl
		"108-88-3",  // toluene
		"50-00-0",   // formaldehyde
	}
	for _, s := range valid {
		assert.True(t, Valid(s), s)
	}
}

func TestInvalid(t *testing.T) {
	invalid := []string{
		"",
		"7732-18-4",     // bad check digit
		"64-17-6",       // bad check digit
		"7732185",       // missing hyphens
		"7732-18-55",    // check digit too long
		"A732-18-5",     // non-digit
		"1-18-5",        // first block too short
		"12345678-18-5", // first block too long
	}
	for _, s := range invalid {
		assert.Error(t, Check(s), s)
	}
}
