package display

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	httperr "github.com/turnio-lab/project-turnio/internal/core/errors"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
)

const (
	defaultRecentLimit = 5
	defaultListLimit   = 50
	maxListLimit       = 100
)

// intakeRecordView is the wire shape for pending arrivals; the raw feed
// record carries name parts the board has no use for.
type intakeRecordView struct {
	HolderName    string    `json:"holder_name"`
	Document      string    `json:"document"`
	CategoryLabel string    `json:"category_label"`
	ArrivedAt     time.Time `json:"arrived_at"`
}

// RegisterRoutes registers the board and console read routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/display/current", s.CurrentHandler)
	r.GET("/v1/display/recent", s.RecentHandler)
	r.GET("/v1/tickets", s.ListTicketsHandler)
	r.GET("/v1/stats", s.StatsHandler)
	r.GET("/v1/categories", s.CategoriesHandler)
	r.GET("/v1/intake/pending", s.PendingIntakeHandler)
}

// CurrentHandler returns the ticket the board should announce, null when
// nothing has been called yet today.
func (s *Service) CurrentHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ticket": s.Current(c.Request.Context()),
	})
}

// RecentHandler returns the short history strip below the announcement.
func (s *Service) RecentHandler(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), defaultRecentLimit)
	c.JSON(http.StatusOK, gin.H{
		"tickets": s.Recent(c.Request.Context(), limit),
	})
}

// ListTicketsHandler lists tickets filtered by lifecycle state.
func (s *Service) ListTicketsHandler(c *gin.Context) {
	state := ticket.State(c.DefaultQuery("state", string(ticket.StateWaiting)))
	if !state.Valid() {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Unknown ticket state",
			Details:   map[string]interface{}{"state": string(state)},
		})
		return
	}

	limit := parseLimit(c.Query("limit"), defaultListLimit)
	c.JSON(http.StatusOK, gin.H{
		"state":   state,
		"tickets": s.ByState(c.Request.Context(), state, limit),
	})
}

// StatsHandler returns the daily snapshot for the board header.
func (s *Service) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DailyStats(c.Request.Context()))
}

// CategoriesHandler returns the category code to display label catalogue.
func (s *Service) CategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": ticket.Categories,
		"default":    ticket.DefaultCategory,
	})
}

// PendingIntakeHandler lists today's feed arrivals from the cached scan.
func (s *Service) PendingIntakeHandler(c *gin.Context) {
	records := s.PendingIntake(c.Request.Context())

	views := make([]intakeRecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, intakeRecordView{
			HolderName:    rec.HolderName(),
			Document:      rec.Document,
			CategoryLabel: rec.CategoryLabel,
			ArrivedAt:     rec.ArrivedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"records": views})
}

func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
