package report

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting. The
// English locale gives consistent thousand separators.
var printer = message.NewPrinter(language.English)

// formatQty formats an activity quantity with two decimals and thousand
// separators, e.g. 12345.678 -> "12,345.68".
func formatQty(f float64) string {
	return printer.Sprintf("%.2f", f)
}

// formatCredits formats a credit figure with three decimals, matching the
// precision the report uses for indicative credits.
func formatCredits(f float64) string {
	return printer.Sprintf("%.3f", f)
}

// formatFactor formats an emission factor without trailing zeros,
// e.g. 2.68 -> "2.68", 7870 -> "7870".
func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatCount formats an integer count with thousand separators.
func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}
