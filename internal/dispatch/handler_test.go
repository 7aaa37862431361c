package dispatch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/turnio-lab/project-turnio/internal/admission"
	"github.com/turnio-lab/project-turnio/internal/cache"
	httperr "github.com/turnio-lab/project-turnio/internal/core/errors"
	"github.com/turnio-lab/project-turnio/internal/core/storage"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
	"github.com/turnio-lab/project-turnio/internal/intake"
	intakemocks "github.com/turnio-lab/project-turnio/internal/mocks/intake"
	storagemocks "github.com/turnio-lab/project-turnio/internal/mocks/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, *storagemocks.TicketStore, *storagemocks.LedgerStore) {
	gin.SetMode(gin.TestMode)

	feed := intakemocks.NewFeed(t)
	tickets := storagemocks.NewTicketStore(t)
	ledger := storagemocks.NewLedgerStore(t)

	// The call-next path runs an admission pass first; let it find nothing.
	feed.On("RecordsToday", mock.Anything).Return(nil, nil).Maybe()
	ledger.On("PendingEntries", mock.Anything, mock.AnythingOfType("int")).
		Return([]*ticket.LedgerEntry{}, nil).Maybe()

	scanCache := cache.NewScanCache(10 * time.Second)
	openTickets := cache.NewOpenTicketCache()
	syncer := intake.NewSyncer(feed, ledger, scanCache, 100)
	admitter := admission.NewService(syncer, tickets, ledger, scanCache, openTickets, "A")

	svc := NewService(tickets, admitter, openTickets)

	r := gin.New()
	svc.RegisterRoutes(r)
	return r, tickets, ledger
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) httperr.ErrorResponse {
	t.Helper()
	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func TestCallNextHandler_Success(t *testing.T) {
	r, tickets, _ := setupRouter(t)

	called := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	tickets.On("ActiveForWindow", mock.Anything, "taq-1").
		Return(nil, storage.ErrTicketNotFound).Once()
	tickets.On("ClaimNext", mock.Anything, "taq-1").
		Return(&ticket.Ticket{
			ID:       42,
			Category: "A",
			Sequence: 7,
			Label:    "A007",
			State:    ticket.StateInService,
			Window:   "taq-1",
			CalledAt: &called,
		}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/windows/taq-1/call-next", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var body struct {
		Status string        `json:"status"`
		Ticket ticket.Ticket `json:"ticket"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "called", body.Status)
	require.Equal(t, "A007", body.Ticket.Label)
	require.Equal(t, "taq-1", body.Ticket.Window)
}

func TestCallNextHandler_EmptyQueueIsNotAnError(t *testing.T) {
	r, tickets, _ := setupRouter(t)

	tickets.On("ActiveForWindow", mock.Anything, "taq-1").
		Return(nil, storage.ErrTicketNotFound).Once()
	tickets.On("ClaimNext", mock.Anything, "taq-1").
		Return(nil, storage.ErrNoTicketAvailable).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/windows/taq-1/call-next", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "empty", body["status"])
}

func TestCallNextHandler_WindowBusyUpfront(t *testing.T) {
	r, tickets, _ := setupRouter(t)

	tickets.On("ActiveForWindow", mock.Anything, "taq-1").
		Return(&ticket.Ticket{ID: 1, Label: "A003", Window: "taq-1"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/windows/taq-1/call-next", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusConflict, resp.Code)
	require.Equal(t, httperr.HttpWindowBusyError, decodeError(t, resp).ErrorType)
	tickets.AssertNotCalled(t, "ClaimNext", mock.Anything, mock.Anything)
}

func TestCallNextHandler_WindowBusyRaceInsideClaim(t *testing.T) {
	r, tickets, _ := setupRouter(t)

	// The upfront check passes but another console wins the race; the claim
	// transaction re-validates and rejects.
	tickets.On("ActiveForWindow", mock.Anything, "taq-1").
		Return(nil, storage.ErrTicketNotFound).Once()
	tickets.On("ClaimNext", mock.Anything, "taq-1").
		Return(nil, storage.ErrWindowBusy).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/windows/taq-1/call-next", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusConflict, resp.Code)
	require.Equal(t, httperr.HttpWindowBusyError, decodeError(t, resp).ErrorType)
}

func TestCallNextHandler_BlankWindowRejected(t *testing.T) {
	r, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/windows/%20/call-next", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, httperr.HttpInvalidRequestError, decodeError(t, resp).ErrorType)
}

func TestMarkServedHandler_Success(t *testing.T) {
	r, tickets, _ := setupRouter(t)

	tickets.On("MarkServed", mock.Anything, int64(42)).
		Return(&ticket.Ticket{
			ID:       42,
			Label:    "A007",
			State:    ticket.StateServed,
			Window:   "taq-1",
			Document: "100",
		}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/tickets/42/served", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Status string        `json:"status"`
		Ticket ticket.Ticket `json:"ticket"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "served", body.Status)
	require.Equal(t, ticket.StateServed, body.Ticket.State)
}

func TestMarkServedHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		storeErr   error
		wantStatus int
		wantType   string
	}{
		{
			name:       "unknown ticket",
			path:       "/v1/tickets/999/served",
			storeErr:   storage.ErrTicketNotFound,
			wantStatus: http.StatusNotFound,
			wantType:   httperr.HttpTicketNotFoundError,
		},
		{
			name:       "already served",
			path:       "/v1/tickets/999/served",
			storeErr:   storage.ErrNotInService,
			wantStatus: http.StatusConflict,
			wantType:   httperr.HttpTicketNotInService,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, tickets, _ := setupRouter(t)

			tickets.On("MarkServed", mock.Anything, int64(999)).
				Return(nil, tc.storeErr).Once()

			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			require.Equal(t, tc.wantStatus, resp.Code)
			require.Equal(t, tc.wantType, decodeError(t, resp).ErrorType)
		})
	}
}

func TestMarkServedHandler_InvalidID(t *testing.T) {
	r, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/tickets/abc/served", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, httperr.HttpInvalidRequestError, decodeError(t, resp).ErrorType)
}

func TestWindowStatusHandler_FreeAndServing(t *testing.T) {
	r, tickets, _ := setupRouter(t)

	tickets.On("ActiveForWindow", mock.Anything, "taq-1").
		Return(nil, storage.ErrTicketNotFound).Once()
	tickets.On("ActiveForWindow", mock.Anything, "taq-2").
		Return(&ticket.Ticket{ID: 1, Label: "A003", Window: "taq-2"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/windows/taq-1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var free map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &free))
	require.Equal(t, "free", free["status"])

	req = httptest.NewRequest(http.MethodGet, "/v1/windows/taq-2", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var serving struct {
		Status string        `json:"status"`
		Ticket ticket.Ticket `json:"ticket"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &serving))
	require.Equal(t, "serving", serving.Status)
	require.Equal(t, "A003", serving.Ticket.Label)
}

func TestRunAdmissionHandler(t *testing.T) {
	r, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admission/run", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Status string `json:"status"`
		Issued int    `json:"issued"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "completed", body.Status)
	require.Zero(t, body.Issued)
}
