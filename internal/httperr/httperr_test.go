package httperr

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 80))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("", 80))
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	// "é" is two bytes; cutting at 2 would split it.
	out := Truncate("héllo", 2)
	assert.Equal(t, "h", out)
	assert.True(t, utf8.ValidString(out))

	// A cut landing after a full rune keeps it.
	out = Truncate("héllo", 3)
	assert.Equal(t, "hé", out)
	assert.True(t, utf8.ValidString(out))
}

func TestValidationMessageNonValidatorError(t *testing.T) {
	msg := ValidationMessage(errors.New("unexpected EOF"))
	assert.Equal(t, "Invalid request body.", msg)
}
