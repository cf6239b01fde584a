package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "nft-launchpad/internal/handler/dto/request"
	resdto "nft-launchpad/internal/handler/dto/response"
	"nft-launchpad/internal/handler/middleware"
	"nft-launchpad/internal/pkg/clock"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/commands"
	"nft-launchpad/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	collectionCommands commands.CollectionCommands
	collectionQueries  queries.CollectionQueries
	clock              clock.Clock
	reservationExpiry  time.Duration
}

func NewCollectionHandler(
	collectionCommands commands.CollectionCommands,
	collectionQueries queries.CollectionQueries,
	clock clock.Clock,
	reservationExpiry time.Duration,
) *CollectionHandler {
	return &CollectionHandler{
		collectionCommands: collectionCommands,
		collectionQueries:  collectionQueries,
		clock:              clock,
		reservationExpiry:  reservationExpiry,
	}
}

// @Summary Create collection
// @Description Create a collection with its full item pool and pricing phases
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCollectionRequest true "Collection definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /collections [post]
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	creatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateCollectionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.collectionCommands.CreateCollection(c.Request.Context(), creatorID, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDuplicateCollection):
			c.JSON(http.StatusConflict, gin.H{"error": "Collection address already in use"})
		case errs.Is(err, errs.ErrInvalidSupply):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Item count must match total supply"})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid collection definition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update collection status
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param address path string true "Collection address"
// @Param request body reqdto.UpdateCollectionStatusRequest true "New status"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{address}/status [patch]
func (h *CollectionHandler) UpdateStatus(c *gin.Context) {
	creatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateCollectionStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.collectionCommands.UpdateStatus(c.Request.Context(), creatorID, c.Param("address"), req.Status)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrCollectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		case errs.Is(err, commands.ErrNotCollectionOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the collection owner"})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get collection
// @Tags collections
// @Produce json
// @Param address path string true "Collection address"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 404 {object} map[string]string
// @Router /collections/{address} [get]
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	rm, err := h.collectionQueries.GetByAddress(c.Request.Context(), c.Param("address"))
	if err != nil {
		if errs.Is(err, errs.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCollectionRM(rm))
}

// @Summary List my collections
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CollectionResponse
// @Router /collections [get]
func (h *CollectionHandler) ListMyCollections(c *gin.Context) {
	creatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rms, err := h.collectionQueries.ListByCreator(c.Request.Context(), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result := make([]*resdto.CollectionResponse, len(rms))
	for i, rm := range rms {
		result[i] = resdto.FromCollectionRM(rm)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List collection items
// @Tags collections
// @Produce json
// @Param address path string true "Collection address"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ItemResponse
// @Failure 404 {object} map[string]string
// @Router /collections/{address}/items [get]
func (h *CollectionHandler) ListItems(c *gin.Context) {
	limit := parseInt32(c.Query("limit"), 50)
	offset := parseInt32(c.Query("offset"), 0)

	rms, err := h.collectionQueries.ListItems(c.Request.Context(), c.Param("address"), limit, offset)
	if err != nil {
		if errs.Is(err, errs.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	now := h.clock.Now()
	result := make([]*resdto.ItemResponse, len(rms))
	for i, rm := range rms {
		result[i] = resdto.FromItemRM(rm, now, h.reservationExpiry)
	}
	c.JSON(http.StatusOK, result)
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return int32(v)
}
