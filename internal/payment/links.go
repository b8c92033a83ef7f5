package payment

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"amy-custom/internal/domain"
)

// LinkBuilder constructs the external checkout and confirmation URLs shown
// on the artwork detail view. Both links open provider-hosted pages; the
// process never verifies that a payment actually happened — confirmation
// is a manual hand-off over the messaging link.
type LinkBuilder struct {
	paypalHandle   string
	whatsappNumber string
}

// NewLinkBuilder creates a LinkBuilder for the given paypal.me merchant
// handle and WhatsApp contact number.
func NewLinkBuilder(paypalHandle, whatsappNumber string) LinkBuilder {
	return LinkBuilder{
		paypalHandle:   paypalHandle,
		whatsappNumber: whatsappNumber,
	}
}

// PayPalMeURL builds the deep link that pre-fills the artwork price on the
// merchant's paypal.me page.
func (b LinkBuilder) PayPalMeURL(art domain.Artwork) string {
	return fmt.Sprintf("https://www.paypal.me/%s/%s", b.paypalHandle, FormatPrice(art.Price))
}

// WhatsAppURL builds the manual-confirmation deep link with the message
// template interpolating the artwork title and price.
func (b LinkBuilder) WhatsAppURL(art domain.Artwork) string {
	msg := fmt.Sprintf(
		"¡Hola Amy! Acabo de realizar el pago de US$%s por la obra \"%s\". Aquí adjunto mi comprobante para recibir el archivo digital.",
		FormatPrice(art.Price),
		strings.ToUpper(art.Title),
	)

	q := url.Values{}
	q.Set("text", msg)
	return fmt.Sprintf("https://wa.me/%s?%s", b.whatsappNumber, q.Encode())
}

// FormatPrice renders a price for URL embedding: no currency symbol and no
// trailing zeros, so 10.00 becomes "10" and 12.50 becomes "12.5". This is
// the one formatting policy used everywhere a price appears in a link.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
