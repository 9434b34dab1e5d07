package http

// Error is the JSON error body returned on every failure path.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one purchasable line in an order write request.
// Money fields travel as decimal strings to avoid float rounding.
type LineItemRequest struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	TaxRate  string `json:"tax_rate"`
}

// OrderWriteRequest is the body for order create and edit calls.
type OrderWriteRequest struct {
	CustomerID      string            `json:"customer_id,omitempty"`
	Items           []LineItemRequest `json:"items"`
	DiscountAmount  string            `json:"discount_amount"`
	PostageCost     string            `json:"postage_cost"`
	PostageTax      string            `json:"postage_tax"`
	BillingAddress  string            `json:"billing_address"`
	DeliveryAddress string            `json:"delivery_address"`
}

// ChangeStatusRequest is the body for status change calls.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderCreatedResponse returns the store-assigned identifier of a new order.
type OrderCreatedResponse struct {
	ID int64 `json:"id"`
}

// OrderTotalsResponse is the valuation view of one order. Amounts are decimal
// strings.
type OrderTotalsResponse struct {
	ID            int64    `json:"id"`
	Number        string   `json:"number"`
	Status        string   `json:"status"`
	Subtotal      string   `json:"subtotal"`
	Postage       string   `json:"postage"`
	Discount      string   `json:"discount"`
	TaxTotal      string   `json:"tax_total"`
	Total         string   `json:"total"`
	ItemSummaries []string `json:"item_summaries"`
}

// OrderSummaryResponse is one row of the status worklist.
type OrderSummaryResponse struct {
	ID         int64  `json:"id"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	CustomerID string `json:"customer_id,omitempty"`
}
