package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(7, 3))
	assert.Equal(t, 3, CalculateTotalPages(9, 3))
	assert.Equal(t, 4, CalculateTotalPages(10, 3))
	assert.Equal(t, 0, CalculateTotalPages(0, 3))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 3))
	assert.Equal(t, 3, CalculateOffset(2, 3))
	assert.Equal(t, 0, CalculateOffset(0, 3))
}
