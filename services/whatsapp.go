package services

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/utils"
)

var ErrNoPhone = errors.New("Nomor HP pelanggan belum diisi!")

var nonDigit = regexp.MustCompile(`[^0-9]`)

const DefaultSignOff = "BengkelPRO"

// NormalizePhone keeps digits only and rewrites a leading 0 to the country code.
func NormalizePhone(raw, countryCode string) string {
	phone := nonDigit.ReplaceAllString(raw, "")
	if strings.HasPrefix(phone, "0") {
		phone = countryCode + phone[1:]
	}
	return phone
}

// WhatsAppMessage builds the status-dependent text sent to the customer.
func WhatsAppMessage(s models.Service, signOff string) string {
	if signOff == "" {
		signOff = DefaultSignOff
	}
	total := utils.FormatRupiah(s.Price)

	switch s.Status {
	case models.StatusSelesai:
		return fmt.Sprintf("Halo Kak %s,\n\nKabar gembira! Mobil %s (%s) sudah *SELESAI* diservis.\nTotal Biaya: *%s*.\n\nSilakan datang untuk pengambilan unit. Terima kasih!\n- %s",
			s.Customer, s.Car, s.Plate, total, signOff)
	case models.StatusProses:
		return fmt.Sprintf("Halo Kak %s,\n\nMobil %s (%s) sedang kami *PROSES* perbaikan.\nEtimasi biaya saat ini: %s.\n\nKami akan kabari jika sudah selesai. Terima kasih!",
			s.Customer, s.Car, s.Plate, total)
	default:
		return fmt.Sprintf("Halo Kak %s,\n\nMobil %s (%s) sudah terdaftar dalam antrean servis kami.\nMohon ditunggu updatenya.\n- %s",
			s.Customer, s.Car, s.Plate, signOff)
	}
}

// WhatsAppLink returns the wa.me deep link for a service.
func WhatsAppLink(s models.Service, countryCode, signOff string) (string, error) {
	if strings.TrimSpace(s.Phone) == "" {
		return "", ErrNoPhone
	}
	phone := NormalizePhone(s.Phone, countryCode)
	if phone == "" {
		return "", ErrNoPhone
	}
	q := url.Values{}
	q.Set("text", WhatsAppMessage(s, signOff))
	return "https://wa.me/" + phone + "?" + q.Encode(), nil
}
