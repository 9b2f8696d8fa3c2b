package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("s3cret")
	assert.NotEqual(t, "s3cret", h)
	assert.True(t, CheckPassword("s3cret", h))
	assert.False(t, CheckPassword("wrong", h))
}

func TestHashIsSalted(t *testing.T) {
	assert.NotEqual(t, HashPassword("p"), HashPassword("p"))
}
