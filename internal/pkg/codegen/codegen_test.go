package codegen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewApplicationCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^HS-[0-9A-F]{8}$`)
	for i := 0; i < 100; i++ {
		code := NewApplicationCode()
		assert.Regexp(t, pattern, code)
	}
}

func TestNewApplicationCodeVaries(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		seen[NewApplicationCode()] = struct{}{}
	}
	// Collisions over a handful of draws would indicate broken entropy.
	assert.Greater(t, len(seen), 990)
}
