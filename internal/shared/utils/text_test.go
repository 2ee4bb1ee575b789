package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	// "한" composed vs. decomposed jamo
	composed := "한"
	decomposed := "한"

	assert.Equal(t, composed, NormalizeText(decomposed))
	assert.Equal(t, "leaking pipe", NormalizeText("  leaking pipe \n"))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SITE-A", NormalizeCode(" site-a "))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Water Leak", TitleCase("water leak"))
	assert.Equal(t, "HVAC Noise", TitleCase("HVAC noise"))
}
