// Package notify renders the outbound confirmation hand-off. It only builds
// strings; opening the link is the caller's concern.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"hotel-booking-api/internal/domain/booking"
)

// WhatsAppNotifier formats a persisted booking as the hotel's WhatsApp
// confirmation message and the wa.me deep link carrying it.
type WhatsAppNotifier struct {
	hotelName string
	// Country code plus number without the leading zero, e.g. 6281234567890.
	number string
}

func NewWhatsAppNotifier(hotelName, number string) *WhatsAppNotifier {
	return &WhatsAppNotifier{hotelName: hotelName, number: number}
}

func (n *WhatsAppNotifier) Message(b booking.Booking) string {
	var sb strings.Builder

	sb.WriteString("🏨 *PEMESANAN KAMAR HOTEL*\n")
	sb.WriteString("━━━━━━━━━━━━━━━━━━━━\n\n")

	sb.WriteString("📋 *Detail Pemesanan*\n")
	fmt.Fprintf(&sb, "ID Booking: %s\n", b.ID)
	fmt.Fprintf(&sb, "Kamar: %s\n\n", b.RoomName)

	sb.WriteString("👤 *Data Tamu*\n")
	fmt.Fprintf(&sb, "Nama: %s\n", b.GuestName)
	fmt.Fprintf(&sb, "Telepon: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Email: %s\n\n", b.Email)

	sb.WriteString("📅 *Jadwal Menginap*\n")
	fmt.Fprintf(&sb, "Check-in: %s\n", b.CheckIn)
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOut)
	fmt.Fprintf(&sb, "Durasi: %d malam\n\n", b.Nights)

	fmt.Fprintf(&sb, "👥 Jumlah Tamu: %d orang\n\n", b.Guests)

	sb.WriteString("💰 *Pembayaran*\n")
	fmt.Fprintf(&sb, "Total: %s\n", b.TotalPrice.Format())
	if b.Notes != "" {
		fmt.Fprintf(&sb, "\n📝 Catatan: %s\n", b.Notes)
	}

	sb.WriteString("\n━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&sb, "Terima kasih telah memilih %s! 🙏", n.hotelName)

	return sb.String()
}

// Link builds the https://wa.me deep link that opens a chat with the hotel,
// message prefilled.
func (n *WhatsAppNotifier) Link(b booking.Booking) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", n.number, url.QueryEscape(n.Message(b)))
}
