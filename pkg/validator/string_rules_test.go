package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/flagdeck/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"non-empty", "dark-mode", true},
		{"empty", "", false},
		{"whitespace only", "  \t ", false},
		{"padded", "  x  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule := validator.RequiredString("field", tt.value)
			assert.Equal(t, tt.valid, rule.Check())
		})
	}
}

func TestMinLenString(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinLenString("f", "abc", 3).Check())
	assert.False(t, validator.MinLenString("f", "ab", 3).Check())
	assert.True(t, validator.MinLenString("f", "", 0).Check())
}

func TestMaxLenString(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxLenString("f", strings.Repeat("a", 100), 100).Check())
	assert.False(t, validator.MaxLenString("f", strings.Repeat("a", 101), 100).Check())

	rule := validator.MaxLenString("name", "x", 100)
	assert.Equal(t, "name", rule.Error.Field)
	assert.Contains(t, rule.Error.Message, "100")
}
