package services

import (
	"fmt"
	"net/url"
)

// OrderWhatsAppLink builds the wa.me deep link a customer follows to
// coordinate payment and shipping for a bank-transfer order.
func OrderWhatsAppLink(number string, orderNumber int) string {
	message := fmt.Sprintf("¡Hola! Acabo de realizar el pedido #%d y quiero coordinar el pago y envío.", orderNumber)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// ContactWhatsAppLink builds the plain wa.me contact link for the store
func ContactWhatsAppLink(number string) string {
	return "https://wa.me/" + number
}

// PhoneLink builds a tel: link for the store contact phone
func PhoneLink(phone string) string {
	return "tel:" + phone
}
