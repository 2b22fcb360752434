package request

type CreatePaymentRequest struct {
	OrderID     string `json:"order_id" binding:"required"`
	UserID      string `json:"user_id"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Currency    string `json:"currency" binding:"required,len=3"`
	ProductName string `json:"product_name"`
	Mode        string `json:"mode" binding:"omitempty,oneof=checkout intent"`
}
