package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKnownContexts(t *testing.T) {
	tests := []struct {
		context string
		tone    string
	}{
		{"welcome", "Warm and friendly"},
		{"overdue", "Helpful reminder"},
		{"no_show", "Understanding yet firm"},
		{"birthday", "Celebratory and appreciative"},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			_, tone := Generate("Ana", "Fade Factory", tt.context)
			assert.Equal(t, tt.tone, tone)
		})
	}
}

func TestGenerateUnknownContextFallsBack(t *testing.T) {
	_, tone := Generate("Ana", "Fade Factory", "xyz")
	assert.Equal(t, DefaultTone, tone)

	_, tone = Generate("Ana", "Fade Factory", "")
	assert.Equal(t, DefaultTone, tone)
}

func TestGenerateMessageFormat(t *testing.T) {
	message, _ := Generate("Ana", "Fade Factory", "birthday")

	assert.Equal(t,
		"Hi Ana, this is Fade Factory. Celebratory and appreciative note to "+
			"let you know we'd love to see you again. Reply to book or use the "+
			"link to schedule at your convenience.",
		message,
	)
}

func TestGenerateIsDeterministic(t *testing.T) {
	m1, t1 := Generate("Ana", "Fade Factory", "welcome")
	m2, t2 := Generate("Ana", "Fade Factory", "welcome")
	assert.Equal(t, m1, m2)
	assert.Equal(t, t1, t2)
}
