package buynow

// StageKind names every forward/compensation point the BuyNow saga can
// be in. BuyNow reuses CreateOrder's shape (convert, then invoice) but
// its convert-step compensation is a revert rather than a delete, so it
// gets its own stage type rather than sharing createorder's.
type StageKind string

const (
	OrdersConvertCartStart       StageKind = "ORDERS_CONVERT_CART_START"
	OrdersConvertCartComplete    StageKind = "ORDERS_CONVERT_CART_COMPLETE"
	BillingCreateInvoiceStart    StageKind = "BILLING_CREATE_INVOICE_START"
	BillingCreateInvoiceComplete StageKind = "BILLING_CREATE_INVOICE_COMPLETE"
)

// Stage is one BuyNow operation-log entry.
type Stage struct {
	Kind          StageKind
	ConversionID  string
	InvoiceSagaID string
}

func ordersConvertCartStart(conversionID string) Stage {
	return Stage{Kind: OrdersConvertCartStart, ConversionID: conversionID}
}

func ordersConvertCartComplete(conversionID string) Stage {
	return Stage{Kind: OrdersConvertCartComplete, ConversionID: conversionID}
}

func billingCreateInvoiceStart(invoiceSagaID string) Stage {
	return Stage{Kind: BillingCreateInvoiceStart, InvoiceSagaID: invoiceSagaID}
}

func billingCreateInvoiceComplete(invoiceSagaID string) Stage {
	return Stage{Kind: BillingCreateInvoiceComplete, InvoiceSagaID: invoiceSagaID}
}
