// Package format renders prices and dates the way the Russian storefront
// shows them.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencySuffix = " ₽"

var (
	printer = message.NewPrinter(language.Russian)

	// CLDR uses a no-break (or narrow no-break) space as the Russian group
	// separator; pages expect a plain space.
	spaces = strings.NewReplacer("\u00a0", " ", "\u202f", " ")
)

// Price formats a whole-ruble amount: 3000000 -> "3 000 000 ₽".
func Price(rubles int64) string {
	return spaces.Replace(printer.Sprintf("%d", rubles)) + CurrencySuffix
}

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Date formats t as a long Russian date with 24-hour time:
// "19 октября 2026 г. в 14:05".
func Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d г. в %02d:%02d",
		t.Day(), monthsGenitive[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// Location is the salon's wall clock; stored timestamps are UTC.
var Location = time.FixedZone("MSK", 3*60*60)

// LocalDate is Date in the salon's time zone.
func LocalDate(t time.Time) string {
	return Date(t.In(Location))
}
