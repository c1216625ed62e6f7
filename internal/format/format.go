// Package format renders numeric values for display in Brazilian Portuguese.
//
// It is a presentation collaborator: the analytics engine only ever produces
// raw numbers, and only the DTO layer calls into here.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders a value as Brazilian currency, e.g. 1234.5 → "R$ 1.234,50".
func Currency(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// Decimal renders a plain quantity with two decimal places and pt-BR
// separators, e.g. 1234.5 → "1.234,50".
func Decimal(v float64) string {
	return printer.Sprintf("%.2f", v)
}
