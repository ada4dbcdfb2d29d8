package errors

const (
	HttpInternalError      = "internal_error"
	HttpInvalidJsonError   = "invalid_json"
	HttpInvalidSaleError   = "invalid_sale"
	HttpInvalidQueryError  = "invalid_query"
	HttpDuplicateSaleError = "duplicate_sale"
	HttpNotFoundError      = "not_found"
)

// ErrorResponse is the error body of every HTTP endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
