package dto

// CreateGLAccountRequest is the body for adding a general ledger account.
type CreateGLAccountRequest struct {
	Code     string `json:"code" binding:"required,max=50"`
	Name     string `json:"name" binding:"required,max=255"`
	Category string `json:"category" binding:"omitempty,max=100"`
}
