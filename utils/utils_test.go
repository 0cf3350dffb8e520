package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 1, 20))
	assert.Equal(t, 1, Clamp(-5, 1, 20))
	assert.Equal(t, 20, Clamp(999, 1, 20))
	assert.Equal(t, 10, Clamp(10, 1, 20))
	assert.Equal(t, 1, Clamp(1, 1, 20))
	assert.Equal(t, 20, Clamp(20, 1, 20))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(8)
	assert.Len(t, s, 8)
	assert.NotEqual(t, s, RandomAlphabetString(8))
}
