package models

type AddToCartRequest struct {
	Quantity int `form:"quantity" binding:"required,gt=0,lte=1000"`
}

type CheckoutRequest struct {
	Name        string `form:"name" binding:"required,notblank,max=200"`
	Address     string `form:"address" binding:"required,notblank,max=500"`
	PaymentInfo string `form:"payment_info" binding:"required,notblank,max=100"`
}

type RegisterRequest struct {
	Username string `form:"username" binding:"required,notblank,unpadded,max=64"`
	Password string `form:"password" binding:"required,max=128"`
	Email    string `form:"email" binding:"required,email,max=254"`
}

type LoginRequest struct {
	Username string `form:"username" binding:"required,notblank,unpadded"`
	Password string `form:"password" binding:"required"`
}

// FieldErrors maps a form field name to a human readable problem.
// An empty map means the request was valid.
type FieldErrors map[string]string

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}
