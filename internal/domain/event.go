package domain

// OrderPlacedEvent is the message published after an order is persisted.
// Purchaser fields default to empty strings when the request omits them;
// consumers never see a null.
type OrderPlacedEvent struct {
	OrderNumber string `json:"orderNumber"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}
