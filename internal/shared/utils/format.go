package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatAmount renders an integer amount with dot thousand separators, the
// way prices are shown on tickets ("15000" -> "15.000"). Presentation only;
// no service contract depends on it.
func FormatAmount(amount int64) string {
	return strings.ReplaceAll(humanize.Comma(amount), ",", ".")
}
