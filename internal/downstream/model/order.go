package model

// AddressFull is embedded (not nested) in ConvertCart, BuyNow and
// ConvertCartPayload so its fields serialize at the parent level,
// mirroring the Rust source's #[serde(flatten)] on the address field.
type AddressFull struct {
	Country                   *string `json:"country,omitempty"`
	Locality                  *string `json:"locality,omitempty"`
	Political                 *string `json:"political,omitempty"`
	PostalCode                *string `json:"postal_code,omitempty"`
	Route                     *string `json:"route,omitempty"`
	StreetNumber              *string `json:"street_number,omitempty"`
	AdministrativeAreaLevel1  *string `json:"administrative_area_level_1,omitempty"`
	AdministrativeAreaLevel2  *string `json:"administrative_area_level_2,omitempty"`
	PlaceID                   *string `json:"place_id,omitempty"`
}

// ProductSellerPrice is a per-product seller-quoted price, keyed by
// product id on the cart-conversion payloads.
type ProductSellerPrice struct {
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// CouponInfo carries a coupon's discount terms as the engine forwards
// them; the engine only reads the coupon id (the map key) to dedupe
// usage notifications.
type CouponInfo struct {
	Percent int    `json:"percent,omitempty"`
	StoreID int    `json:"store_id,omitempty"`
	Code    string `json:"code,omitempty"`
}

// DeliveryInfo describes the shipping option chosen for a product.
type DeliveryInfo struct {
	CompanyPackageID int     `json:"company_package_id"`
	ShippingID       int     `json:"shipping_id,omitempty"`
	Name             string  `json:"name,omitempty"`
	Price            float64 `json:"price,omitempty"`
}

// ProductInfo carries the per-product metadata cart-conversion needs
// for pricing and notification fan-out.
type ProductInfo struct {
	Name     string `json:"name,omitempty"`
	StoreID  int    `json:"store_id"`
	Quantity int    `json:"quantity,omitempty"`
}

// ConvertCart is the CreateOrder workflow's input body.
type ConvertCart struct {
	CustomerID int `json:"customer_id" validate:"required,gt=0" label:"Customer ID"`
	AddressFull
	ReceiverName  string                         `json:"receiver_name" validate:"required"`
	ReceiverPhone string                         `json:"receiver_phone" validate:"required"`
	ReceiverEmail string                         `json:"receiver_email" validate:"omitempty,email"`
	Prices        map[string]ProductSellerPrice  `json:"prices"`
	Currency      string                         `json:"currency"`
	Coupons       map[string]CouponInfo          `json:"coupons"`
	DeliveryInfo  map[string]DeliveryInfo        `json:"delivery_info"`
	ProductInfo   map[string]ProductInfo         `json:"product_info"`
	UUID          string                         `json:"uuid"`
	CurrencyType  *string                        `json:"currency_type,omitempty"`
}

// ConvertCartPayload is what actually crosses the wire to the orders
// service: ConvertCart plus the conversion id minted for this attempt.
type ConvertCartPayload struct {
	ConversionID  *string `json:"conversion_id,omitempty"`
	CustomerID    int     `json:"user_id"`
	ReceiverName  string  `json:"receiver_name"`
	ReceiverPhone string  `json:"receiver_phone"`
	ReceiverEmail string  `json:"receiver_email"`
	AddressFull
	SellerPrices map[string]ProductSellerPrice `json:"seller_prices"`
	Coupons      map[string]CouponInfo         `json:"coupons"`
	DeliveryInfo map[string]DeliveryInfo       `json:"delivery_info"`
	ProductInfo  map[string]ProductInfo        `json:"product_info"`
	UUID         string                        `json:"uuid"`
	CurrencyType *string                       `json:"currency_type,omitempty"`
}

// NewConvertCartPayload lifts an inbound ConvertCart into the payload
// the orders service expects, attaching the freshly minted conversion id.
func NewConvertCartPayload(cart ConvertCart, conversionID string) ConvertCartPayload {
	return ConvertCartPayload{
		ConversionID:  &conversionID,
		CustomerID:    cart.CustomerID,
		ReceiverName:  cart.ReceiverName,
		ReceiverPhone: cart.ReceiverPhone,
		ReceiverEmail: cart.ReceiverEmail,
		AddressFull:   cart.AddressFull,
		SellerPrices:  cart.Prices,
		Coupons:       cart.Coupons,
		DeliveryInfo:  cart.DeliveryInfo,
		ProductInfo:   cart.ProductInfo,
		UUID:          cart.UUID,
		CurrencyType:  cart.CurrencyType,
	}
}

// ConvertCartRevert identifies the in-flight conversion to undo.
type ConvertCartRevert struct {
	ConversionID string `json:"conversion_id"`
}

// BuyNow is the BuyNow workflow's input body: a single-product
// fast-checkout, as opposed to a full cart conversion.
type BuyNow struct {
	ProductID     int     `json:"product_id" validate:"required,gt=0" label:"Product ID"`
	CustomerID    int     `json:"customer_id" validate:"required,gt=0" label:"Customer ID"`
	StoreID       int     `json:"store_id" validate:"required,gt=0" label:"Store ID"`
	AddressFull
	ReceiverName  string              `json:"receiver_name" validate:"required"`
	ReceiverEmail string              `json:"receiver_email" validate:"omitempty,email"`
	Price         ProductSellerPrice  `json:"price"`
	Quantity      int                 `json:"quantity" validate:"required,gt=0"`
	Currency      string              `json:"currency" validate:"required"`
	ReceiverPhone string              `json:"receiver_phone" validate:"required"`
	PreOrder      bool                `json:"pre_order"`
	PreOrderDays  int                 `json:"pre_order_days"`
	Coupon        *CouponInfo         `json:"coupon,omitempty"`
	DeliveryInfo  *DeliveryInfo       `json:"delivery_info,omitempty"`
	ProductInfo   ProductInfo         `json:"product_info"`
	UUID          string              `json:"uuid"`
}

// BuyNowPayload is what crosses the wire: BuyNow plus the freshly
// minted conversion id.
type BuyNowPayload struct {
	ConversionID *string `json:"conversion_id,omitempty"`
	BuyNow
}

// NewBuyNowPayload attaches a fresh conversion id to an inbound BuyNow.
func NewBuyNowPayload(buyNow BuyNow, conversionID string) BuyNowPayload {
	return BuyNowPayload{ConversionID: &conversionID, BuyNow: buyNow}
}

// Order is the orders service's representation of a single converted
// order line.
type Order struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	StoreID    int     `json:"store_id"`
	State      string  `json:"state"`
	TotalCost  float64 `json:"total_cost,omitempty"`
	Currency   string  `json:"currency,omitempty"`
}

// CreateInvoice is the POST /invoices body.
type CreateInvoice struct {
	Orders     []Order `json:"orders"`
	CustomerID int     `json:"customer_id"`
	SagaID     string  `json:"saga_id"`
	Currency   string  `json:"currency"`
}

// Transaction is a single payment movement recorded against an invoice.
type Transaction struct {
	ID             string  `json:"id"`
	AmountCaptured float64 `json:"amount_captured"`
}

// Invoice is the billing service's response to invoice creation. URL is
// the payment page the caller is redirected to.
type Invoice struct {
	ID              string        `json:"id"`
	InvoiceID       string        `json:"invoice_id"`
	Transactions    []Transaction `json:"transactions"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	State           string        `json:"state"`
	Wallet          *string       `json:"wallet,omitempty"`
	AmountCaptured  float64       `json:"amount_captured"`
	URL             string        `json:"url,omitempty"`
}

// BillingOrders is the CreateOrder/BuyNow workflow's return value: the
// orders just created, plus the URL to the invoice payment page.
type BillingOrders struct {
	Orders []Order `json:"orders"`
	URL    string  `json:"url"`
}

// OrderPaymentStateRequest is the payload for the single-call,
// no-compensation order-state leaf endpoints (decline/capture/set
// payment state).
type OrderPaymentStateRequest struct {
	State string `json:"state"`
}
