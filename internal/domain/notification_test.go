package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range ValidCategories() {
		assert.True(t, IsValidCategory(c), c)
	}

	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("weather"))
	assert.False(t, IsValidCategory("Order"))
}

func TestIsValidReferenceType(t *testing.T) {
	for _, rt := range ValidReferenceTypes() {
		assert.True(t, IsValidReferenceType(rt), rt)
	}

	assert.False(t, IsValidReferenceType(""))
	assert.False(t, IsValidReferenceType("invoice"))
}

func TestValidRating(t *testing.T) {
	tests := []struct {
		rating int
		want   bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRating(tt.rating), "rating %d", tt.rating)
	}
}
