package compositions

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// formatAmount groups thousands the way the clips show money, e.g. 1,000,000.
func formatAmount(n int) string {
	return amountPrinter.Sprintf("%d", n)
}
