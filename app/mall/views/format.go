package views

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Number formats n with Korean digit grouping, e.g. "1,234".
func Number(n int) string {
	return message.NewPrinter(language.Korean).Sprintf("%d", n)
}

// Price formats a won amount, e.g. "12,900원".
func Price(n int) string {
	return Number(n) + "원"
}
