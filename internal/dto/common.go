package dto

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CountResponse reports how many rows an operation touched.
type CountResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

// PaginationInfo describes one page of a larger result set.
type PaginationInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
