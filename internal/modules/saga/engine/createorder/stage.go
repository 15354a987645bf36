package createorder

// StageKind names every forward/compensation point the CreateOrder
// saga can be in.
type StageKind string

const (
	OrdersConvertCartStart        StageKind = "ORDERS_CONVERT_CART_START"
	OrdersConvertCartComplete     StageKind = "ORDERS_CONVERT_CART_COMPLETE"
	BillingCreateInvoiceStart     StageKind = "BILLING_CREATE_INVOICE_START"
	BillingCreateInvoiceComplete  StageKind = "BILLING_CREATE_INVOICE_COMPLETE"
)

// Stage is one CreateOrder operation-log entry.
type Stage struct {
	Kind         StageKind
	ConversionID string
	CustomerID   int
	InvoiceSagaID string
}

func ordersConvertCartStart(conversionID string, customerID int) Stage {
	return Stage{Kind: OrdersConvertCartStart, ConversionID: conversionID, CustomerID: customerID}
}

func ordersConvertCartComplete(conversionID string, customerID int) Stage {
	return Stage{Kind: OrdersConvertCartComplete, ConversionID: conversionID, CustomerID: customerID}
}

func billingCreateInvoiceStart(invoiceSagaID string) Stage {
	return Stage{Kind: BillingCreateInvoiceStart, InvoiceSagaID: invoiceSagaID}
}

func billingCreateInvoiceComplete(invoiceSagaID string) Stage {
	return Stage{Kind: BillingCreateInvoiceComplete, InvoiceSagaID: invoiceSagaID}
}
