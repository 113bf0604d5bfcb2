// Package crm renders outreach messages. Despite the product branding this
// is a deterministic template, not generated text.
package crm

import "fmt"

const DefaultTone = "Friendly"

// toneByContext is a lookup with a default, never an error: an unknown
// context still produces a message.
var toneByContext = map[string]string{
	"welcome":  "Warm and friendly",
	"overdue":  "Helpful reminder",
	"no_show":  "Understanding yet firm",
	"birthday": "Celebratory and appreciative",
}

// Generate returns the rendered message and its tone label for a context
// tag such as "welcome" or "no_show". It is pure and total.
func Generate(clientName, shopName, context string) (message, tone string) {
	tone, ok := toneByContext[context]
	if !ok {
		tone = DefaultTone
	}

	message = fmt.Sprintf(
		"Hi %s, this is %s. %s note to let you know we'd love to see you again. "+
			"Reply to book or use the link to schedule at your convenience.",
		clientName, shopName, tone,
	)
	return message, tone
}
