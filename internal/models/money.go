package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money renders whole-unit amounts with one configured currency symbol.
type Money struct {
	Symbol  string
	printer *message.Printer
}

func NewMoney(symbol string) Money {
	return Money{Symbol: symbol, printer: message.NewPrinter(language.English)}
}

// Format prints amount with thousands grouping, e.g. ¥1,250.
func (m Money) Format(amount int) string {
	p := m.printer
	if p == nil {
		p = message.NewPrinter(language.English)
	}
	return m.Symbol + p.Sprintf("%d", amount)
}
