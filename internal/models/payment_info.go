package models

// PaymentInfo holds the payment details shown on the public dashboard.
// There is at most one row; updates replace its fields.
type PaymentInfo struct {
	DefaultModel
	Bkash   string
	Nagad   string
	Bank    string
	Address string
}
