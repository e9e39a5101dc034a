package entity

// Payment fields are tracked on orders but not enforced against any real
// payment flow.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

const (
	PayMethodCash   = "cash"
	PayMethodCard   = "card"
	PayMethodOnline = "online"
	PayMethodOther  = "other"
)

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

func ValidPaymentMethod(s string) bool {
	switch s {
	case PayMethodCash, PayMethodCard, PayMethodOnline, PayMethodOther:
		return true
	}
	return false
}
