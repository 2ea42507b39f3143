package model

type User struct {
	ID     string `json:"id"`
	Points int64  `json:"points"`
}

// OrderCustomer is the billing contact attached to an inbound order payload.
type OrderCustomer struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}
