package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah memformat nominal rupiah bulat, contoh: 15000 -> "Rp 15.000"
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return "-Rp " + idPrinter.Sprintf("%d", -amount)
	}
	return "Rp " + idPrinter.Sprintf("%d", amount)
}

// FormatNumber memberi pemisah ribuan tanpa prefix "Rp"
func FormatNumber(n int64) string {
	return idPrinter.Sprintf("%d", n)
}
