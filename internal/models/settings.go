package models

// ConfigEntry is one key-value pair from the store API configuration
// endpoint. JSON field names follow the wire format.
type ConfigEntry struct {
	Key   string `json:"clave"`
	Value string `json:"valor"`
}

const settingsPlaceholder = "Sin configurar"

// SiteSettings is the typed view of the key-value configuration, with
// defaults applied at the parsing boundary.
type SiteSettings struct {
	StoreName        string `json:"store_name"`
	WhatsApp         string `json:"whatsapp"`
	WhatsAppCheckout string `json:"whatsapp_checkout"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	Location         string `json:"location"`

	// Bank transfer details shown on the order confirmation page
	BankName   string `json:"bank_name"`
	BankHolder string `json:"bank_holder"`
	BankCBU    string `json:"bank_cbu"`
	BankAlias  string `json:"bank_alias"`
	BankCUIT   string `json:"bank_cuit"`
}

// SettingsFromEntries parses the raw key-value configuration into typed
// settings. Unknown keys are ignored; missing bank fields fall back to a
// placeholder and the checkout WhatsApp number falls back to the general
// contact number.
func SettingsFromEntries(entries []ConfigEntry) *SiteSettings {
	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		values[entry.Key] = entry.Value
	}

	pick := func(key, fallback string) string {
		if v, ok := values[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	settings := &SiteSettings{
		StoreName:    pick("nombre_tienda", "Grana 3D"),
		WhatsApp:     pick("whatsapp", "5491100000000"),
		ContactEmail: pick("email_contacto", ""),
		ContactPhone: pick("telefono_contacto", ""),
		Location:     pick("ubicacion", ""),
		BankName:     pick("banco_nombre", settingsPlaceholder),
		BankHolder:   pick("banco_titular", settingsPlaceholder),
		BankCBU:      pick("banco_cbu", settingsPlaceholder),
		BankAlias:    pick("banco_alias", settingsPlaceholder),
		BankCUIT:     pick("banco_cuit", settingsPlaceholder),
	}
	settings.WhatsAppCheckout = pick("whatsapp_checkout", settings.WhatsApp)

	return settings
}
