package errors

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpInvalidRequestError   = "invalid_request"
	HttpWindowBusyError       = "window_busy"
	HttpNoTicketAvailable     = "no_ticket_available"
	HttpTicketNotFoundError   = "ticket_not_found"
	HttpTicketNotInService    = "ticket_not_in_service"
	HttpStoreUnavailableError = "store_unavailable"
)

// ErrorResponse is the error response body for dispatch and display errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
