package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCacheKeyNormalizes(t *testing.T) {
	key := NewCacheKey(" Photographer ", "Austin", "TX", "")

	assert.Equal(t, "photographer", key.Category)
	assert.Equal(t, "austin", key.City)
	assert.Equal(t, "tx", key.State)
	assert.Equal(t, "", key.Subcategory, "absent subcategory normalizes to empty, never NULL")

	withSub := NewCacheKey("Photographer", "Austin", "TX", "Portrait")
	assert.Equal(t, "portrait", withSub.Subcategory)
	assert.NotEqual(t, key, withSub)
}

func TestCacheKeyString(t *testing.T) {
	key := NewCacheKey("photographer", "Austin", "TX", "portrait")
	assert.Equal(t, "photographer|austin|tx|portrait", key.String())

	// Distinct keys must never share a singleflight string.
	other := NewCacheKey("photographer", "Austin", "TX", "")
	assert.NotEqual(t, key.String(), other.String())
}
