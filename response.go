package fitness_tracker

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error" example:"exercise 3 not found"`
	Code  string `json:"code" example:"NOT_FOUND"`
}

// IDResponse is returned by endpoints that create a row.
type IDResponse struct {
	ID int64 `json:"id" example:"42"`
}

// TokenResponse carries a signed JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// StatusResponse is a bare acknowledgement.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ListResponse wraps collections with their size.
type ListResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

// NewList builds a ListResponse, never encoding a null slice.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Count: len(items), Items: items}
}
