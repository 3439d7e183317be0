package models

// ShippingMethod identifies how an order is delivered. Values are the
// store API wire constants.
type ShippingMethod string

const (
	ShippingPickup  ShippingMethod = "RETIRO_LOCAL"     // free, collected in person
	ShippingPostal  ShippingMethod = "CORREO_ARGENTINO" // home delivery, 3-5 days
	ShippingExpress ShippingMethod = "ANDREANI"         // express delivery, 1-3 days
)

var shippingCosts = map[ShippingMethod]int{
	ShippingPickup:  0,
	ShippingPostal:  3500,
	ShippingExpress: 5000,
}

// IsValid reports whether the method is one of the offered options
func (m ShippingMethod) IsValid() bool {
	_, ok := shippingCosts[m]
	return ok
}

// Cost returns the flat shipping fee for the method
func (m ShippingMethod) Cost() int {
	return shippingCosts[m]
}

// RequiresAddress reports whether the method needs a shipping address
func (m ShippingMethod) RequiresAddress() bool {
	return m != ShippingPickup
}

// PaymentMethod identifies how an order is paid. Values are the store
// API wire constants.
type PaymentMethod string

const (
	PaymentGateway      PaymentMethod = "MERCADOPAGO"   // hosted payment page redirect
	PaymentBankTransfer PaymentMethod = "TRANSFERENCIA" // out-of-band transfer, confirmed via WhatsApp
)

// IsValid reports whether the method is one of the offered options
func (m PaymentMethod) IsValid() bool {
	return m == PaymentGateway || m == PaymentBankTransfer
}

// OrderItem is a cart line snapshotted into an order submission
type OrderItem struct {
	ProductID string `json:"productoId"`
	Quantity  int    `json:"cantidad"`
	Variant   string `json:"variante,omitempty"`
}

// CheckoutOrder is the payload posted to the store API when the checkout
// wizard is confirmed. It aggregates the customer contact data, shipping
// selection and the cart lines at submission time.
type CheckoutOrder struct {
	Items          []OrderItem    `json:"items"`
	FirstName      string         `json:"nombreCliente"`
	LastName       string         `json:"apellidoCliente"`
	Email          string         `json:"emailCliente"`
	Phone          string         `json:"telefonoCliente"`
	NationalID     string         `json:"dniCliente,omitempty"`
	Address        string         `json:"direccionEnvio,omitempty"`
	City           string         `json:"ciudadEnvio,omitempty"`
	Province       string         `json:"provinciaEnvio,omitempty"`
	PostalCode     string         `json:"codigoPostalEnvio,omitempty"`
	Notes          string         `json:"notas,omitempty"`
	ShippingMethod ShippingMethod `json:"metodoEnvio"`
	PaymentMethod  PaymentMethod  `json:"metodoPago"`
	ShippingCost   int            `json:"costoEnvio"`
	Reference      string         `json:"referencia,omitempty"` // gateway idempotency reference
}

// OrderStatus represents the lifecycle state of a placed order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDIENTE"
	OrderStatusPaid      OrderStatus = "PAGADO"
	OrderStatusShipped   OrderStatus = "ENVIADO"
	OrderStatusDelivered OrderStatus = "ENTREGADO"
	OrderStatusCancelled OrderStatus = "CANCELADO"
)

// IsValid reports whether the status is a known lifecycle state
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a placed order as the admin surface sees it. The authoritative
// entity lives in the store API; this client never mutates it beyond the
// status field.
type Order struct {
	ID             string         `json:"id"`
	Number         int            `json:"numero"`
	Status         OrderStatus    `json:"estado"`
	CustomerName   string         `json:"nombreCliente"`
	CustomerEmail  string         `json:"emailCliente"`
	CustomerPhone  string         `json:"telefonoCliente"`
	ShippingMethod ShippingMethod `json:"metodoEnvio"`
	PaymentMethod  PaymentMethod  `json:"metodoPago"`
	Total          int            `json:"total"`
	CreatedAt      string         `json:"creadoEn"`
}

// StoreStats is the aggregate dashboard payload from the admin API
type StoreStats struct {
	TotalOrders   int `json:"totalPedidos"`
	PendingOrders int `json:"pedidosPendientes"`
	TotalRevenue  int `json:"ventasTotales"`
	ProductCount  int `json:"totalProductos"`
}
