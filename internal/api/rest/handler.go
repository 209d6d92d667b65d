package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/remybar/cta-server/internal/api/rest/dto"
	"github.com/remybar/cta-server/internal/logger"
	"github.com/remybar/cta-server/internal/store"
)

const (
	defaultUserPageSize = 50
	maxUserPageSize     = 200
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetStats returns the aggregate supply statistics of the collection
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// GetCardCollection lists every card archetype with its supply
	// GET /api/v1/cards
	GetCardCollection(c *gin.Context)

	// GetCard returns one archetype with its minted instances and holders
	// GET /api/v1/cards/:id
	GetCard(c *gin.Context)

	// ListUsers lists owners by descending card count
	// GET /api/v1/users?page=<index>&page_size=<size>
	ListUsers(c *gin.Context)

	// GetUser returns one user's holdings summary and assets
	// GET /api/v1/users/:address
	GetUser(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store store.Store
}

// NewHandler creates a new REST API handler over the store
func NewHandler(st store.Store) Handler {
	return &handler{
		store: st,
	}
}

// GetStats returns the aggregate supply statistics of the collection.
// A failing store query degrades to an empty payload; the error is only
// logged, read availability wins over error visibility here.
func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.store.GetCollectionStats(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		c.JSON(http.StatusOK, dto.StatsResponse{Rarities: []dto.RarityStat{}})
		return
	}

	c.JSON(http.StatusOK, dto.FromCollectionStats(stats))
}

// GetCardCollection lists every card archetype with its supply
func (h *handler) GetCardCollection(c *gin.Context) {
	rows, err := h.store.GetCardCollection(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		c.JSON(http.StatusOK, []dto.CardSummary{})
		return
	}

	c.JSON(http.StatusOK, dto.FromCardMetaRows(rows))
}

// GetCard returns one archetype with its minted instances and holders
func (h *handler) GetCard(c *gin.Context) {
	metaID := c.Param("id")
	if metaID == "" {
		respondBadRequest(c, "Card id is required")
		return
	}

	meta, err := h.store.GetCardDetail(c.Request.Context(), metaID)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("card_id", metaID))
		c.JSON(http.StatusOK, dto.CardDetailResponse{})
		return
	}
	if meta == nil {
		respondNotFound(c, "Card not found")
		return
	}

	holders, err := h.store.GetCardHolders(c.Request.Context(), metaID)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("card_id", metaID))
		holders = nil
	}

	c.JSON(http.StatusOK, dto.FromCardDetail(*meta, holders))
}

// ListUsers lists owners by descending card count
func (h *handler) ListUsers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		respondBadRequest(c, "Invalid page parameter")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultUserPageSize)))
	if err != nil || pageSize <= 0 || pageSize > maxUserPageSize {
		respondBadRequest(c, "Invalid page_size parameter")
		return
	}

	rows, total, err := h.store.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		c.JSON(http.StatusOK, dto.FromUserRows(nil, 0, page, pageSize))
		return
	}

	c.JSON(http.StatusOK, dto.FromUserRows(rows, total, page, pageSize))
}

// GetUser returns one user's holdings summary and assets
func (h *handler) GetUser(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Address is required")
		return
	}

	info, err := h.store.GetUserInfo(c.Request.Context(), address)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("address", address))
		c.JSON(http.StatusOK, dto.UserResponse{Cards: []dto.UserCard{}, MintPasses: []dto.UserMintPass{}})
		return
	}
	if info == nil {
		respondNotFound(c, "User not found")
		return
	}

	collection, err := h.store.GetUserCollection(c.Request.Context(), address)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("address", address))
		collection = nil
	}

	c.JSON(http.StatusOK, dto.FromUser(info, collection))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
