package model

// CreateContactPayload registers a newly created account with the CRM
// equivalent after CreateAccount succeeds. Best-effort: failures here
// are logged, never compensated.
type CreateContactPayload struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

// OrderCreateNotification is the best-effort order-created notice sent
// once for the customer and once per distinct store on a successful
// CreateOrder/BuyNow.
type OrderCreateNotification struct {
	UserID int     `json:"user_id"`
	Orders []Order `json:"orders"`
}

// CouponUsedPayload records a coupon redemption against the store that
// issued it; sent once per unique coupon id on a successful order.
type CouponUsedPayload struct {
	CouponID int `json:"coupon_id"`
	UserID   int `json:"user_id"`
}
