package dto

type CreateOrderRequest struct {
	Amount        int64  `json:"amount" binding:"required,min=1"` // major currency units
	ApplicationID string `json:"application_id" binding:"required"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// VerifyPaymentRequest carries the gateway callback fields. The field
// names follow the gateway's checkout payload.
type VerifyPaymentRequest struct {
	OrderID       string `json:"razorpay_order_id" binding:"required"`
	PaymentID     string `json:"razorpay_payment_id" binding:"required"`
	Signature     string `json:"razorpay_signature" binding:"required"`
	ApplicationID string `json:"application_id" binding:"required"`
}

type VerifyPaymentResponse struct {
	Status string `json:"status"` // always "success"; a mismatch is an error
}
