package api

import (
	"net/http"

	reqdto "nft-launchpad/internal/handler/dto/request"
	resdto "nft-launchpad/internal/handler/dto/response"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/commands"
	"nft-launchpad/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MintHandler struct {
	mintCommands commands.MintCommands
	mintQueries  queries.MintQueries
}

func NewMintHandler(mintCommands commands.MintCommands, mintQueries queries.MintQueries) *MintHandler {
	return &MintHandler{
		mintCommands: mintCommands,
		mintQueries:  mintQueries,
	}
}

// @Summary Request a mint
// @Description Reserve items and build the unsigned payment transaction
// @Tags mint
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key, one per mint attempt"
// @Param address path string true "Collection address"
// @Param request body reqdto.CreateMintRequest true "Mint request"
// @Success 200 {object} resdto.MintRequestResponse
// @Success 201 {object} resdto.MintRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /collections/{address}/mint [post]
func (h *MintHandler) CreateMintRequest(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req reqdto.CreateMintRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	body := req.ToDomain(c.Param("address"))
	result, err := h.mintCommands.CreateMintRequest(c.Request.Context(), idempotencyKey, body)
	if err != nil {
		h.respondMintError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromMintRequestRM(result.Request))
}

// @Summary Attach a payment signature
// @Description Record the submitted signature and attempt settlement
// @Tags mint
// @Accept json
// @Produce json
// @Param key path string true "Idempotency key"
// @Param request body reqdto.AttachSignatureRequest true "Submitted signature"
// @Success 200 {object} resdto.MintRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /mint/{key}/signature [post]
func (h *MintHandler) AttachSignature(c *gin.Context) {
	key, err := uuid.Parse(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idempotency key"})
		return
	}

	var req reqdto.AttachSignatureRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.mintCommands.AttachSignature(c.Request.Context(), key, req.TransactionSignature)
	if err != nil {
		h.respondMintError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMintRequestRM(rm))
}

// @Summary Poll a mint request
// @Description Fetch the current state of a mint request by idempotency key
// @Tags mint
// @Produce json
// @Param key path string true "Idempotency key"
// @Success 200 {object} resdto.MintRequestResponse
// @Failure 404 {object} map[string]string
// @Router /mint/{key} [get]
func (h *MintHandler) GetMintRequest(c *gin.Context) {
	key, err := uuid.Parse(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idempotency key"})
		return
	}

	rm, err := h.mintQueries.GetByKey(c.Request.Context(), key)
	if err != nil {
		h.respondMintError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMintRequestRM(rm))
}

func (h *MintHandler) respondMintError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrCollectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
	case errs.Is(err, errs.ErrMintRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Mint request not found"})
	case errs.Is(err, errs.ErrCollectionNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "Collection is not open for minting"})
	case errs.Is(err, errs.ErrInsufficientInventory):
		c.JSON(http.StatusConflict, gin.H{"error": "Not enough NFTs available"})
	case errs.Is(err, errs.ErrMintRequestConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Idempotency key reused with a different request"})
	case errs.Is(err, errs.ErrOnChainFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment transaction failed on-chain"})
	case errs.Is(err, commands.ErrNoTransaction):
		c.JSON(http.StatusConflict, gin.H{"error": "Request has no payment transaction to sign"})
	case errs.Is(err, commands.ErrRateUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rate unavailable"})
	case errs.Is(err, errs.ErrDomainValidation), errs.Is(err, errs.ErrIdempotencyKeyRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid mint request"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	header := c.GetHeader("Idempotency-Key")
	if header == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(header)
	if err != nil {
		return uuid.Nil, errs.New("Idempotency-Key must be a UUID")
	}
	return key, nil
}
