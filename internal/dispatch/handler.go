package dispatch

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	httperr "github.com/turnio-lab/project-turnio/internal/core/errors"
	"github.com/turnio-lab/project-turnio/internal/core/storage"
)

const (
	msgInvalidWindow  = "Window name must not be empty"
	msgInvalidTicket  = "Ticket id must be a positive integer"
	msgWindowBusy     = "Window already has a ticket in service"
	msgTicketNotFound = "Ticket not found"
	msgNotInService   = "Ticket is not in service"
	msgCallFailed     = "Failed to call next ticket"
	msgServeFailed    = "Failed to mark ticket served"
)

// dispatchError carries the structured HTTP error shape from a helper back to the handler.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type dispatchError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *dispatchError) Error() string {
	return e.message
}

// RegisterRoutes registers the window-facing dispatch routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/windows/:window/call-next", s.CallNextHandler)
	r.GET("/v1/windows/:window", s.WindowStatusHandler)
	r.POST("/v1/tickets/:id/served", s.MarkServedHandler)
	r.POST("/v1/admission/run", s.RunAdmissionHandler)
}

// CallNextHandler handles HTTP POST requests from a window asking for its
// next ticket. An empty queue is not an error: the response is 200 with an
// explicit empty status so window consoles can show "no one waiting".
func (s *Service) CallNextHandler(c *gin.Context) {
	window := c.Param("window")

	t, err := s.CallNext(c.Request.Context(), window)
	if errors.Is(err, storage.ErrNoTicketAvailable) {
		c.JSON(http.StatusOK, gin.H{
			"status": "empty",
			"window": window,
		})
		return
	}
	if err != nil {
		writeError(c, callError(window, err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "called",
		"ticket": t,
	})
}

// WindowStatusHandler reports the ticket a window is currently serving.
func (s *Service) WindowStatusHandler(c *gin.Context) {
	window := c.Param("window")

	t, err := s.WindowStatus(c.Request.Context(), window)
	if errors.Is(err, storage.ErrTicketNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"status": "free",
			"window": window,
		})
		return
	}
	if errors.Is(err, ErrInvalidWindow) {
		writeError(c, &dispatchError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    msgInvalidWindow,
		})
		return
	}
	if err != nil {
		writeError(c, &dispatchError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    "Failed to load window status",
		})
		return
	}

	resp := gin.H{
		"status": "serving",
		"window": window,
		"ticket": t,
	}
	if t.CalledAt != nil {
		resp["in_service_seconds"] = int(time.Since(*t.CalledAt).Seconds())
	}
	c.JSON(http.StatusOK, resp)
}

// MarkServedHandler handles HTTP POST requests closing out a ticket.
func (s *Service) MarkServedHandler(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || ticketID <= 0 {
		writeError(c, &dispatchError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    msgInvalidTicket,
		})
		return
	}

	t, serveErr := s.MarkServed(c.Request.Context(), ticketID)
	if serveErr != nil {
		writeError(c, serveError(ticketID, serveErr))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "served",
		"ticket": t,
	})
}

// RunAdmissionHandler triggers one admission pass on demand.
func (s *Service) RunAdmissionHandler(c *gin.Context) {
	issued := s.RunAdmission(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status": "completed",
		"issued": issued,
	})
}

// callError maps a CallNext failure to its HTTP shape.
func callError(window string, err error) *dispatchError {
	switch {
	case errors.Is(err, ErrInvalidWindow):
		return &dispatchError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    msgInvalidWindow,
		}
	case errors.Is(err, storage.ErrWindowBusy):
		return &dispatchError{
			statusCode: http.StatusConflict,
			errorType:  httperr.HttpWindowBusyError,
			message:    msgWindowBusy,
			details:    map[string]interface{}{"window": window},
		}
	default:
		return &dispatchError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgCallFailed,
		}
	}
}

// serveError maps a MarkServed failure to its HTTP shape.
func serveError(ticketID int64, err error) *dispatchError {
	switch {
	case errors.Is(err, storage.ErrTicketNotFound):
		return &dispatchError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpTicketNotFoundError,
			message:    msgTicketNotFound,
			details:    map[string]interface{}{"ticket_id": ticketID},
		}
	case errors.Is(err, storage.ErrNotInService):
		return &dispatchError{
			statusCode: http.StatusConflict,
			errorType:  httperr.HttpTicketNotInService,
			message:    msgNotInService,
			details:    map[string]interface{}{"ticket_id": ticketID},
		}
	default:
		return &dispatchError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgServeFailed,
		}
	}
}

// writeError serializes a dispatchError as the JSON HTTP response.
func writeError(c *gin.Context, err *dispatchError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
