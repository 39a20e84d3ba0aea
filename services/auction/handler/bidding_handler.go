package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/auctionerrors"
	model "tradehub/internal/models"
	"tradehub/services/auction/helpers"
	"tradehub/utils"
)

type BiddingServiceInterface interface {
	PlaceBid(propertyID, userID string, amount float64) (model.Bid, error)
	GetBidsForProperty(propertyID string) ([]model.Bid, error)
	GetWinningBid(propertyID string) (model.Bid, error)
	GetPropertiesByBidder(userID string) ([]model.Property, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	userID := helpers.CurrentUserID(c)

	bid, err := h.service.PlaceBid(req.PropertyID, userID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to record bid", map[string]any{
			"handler":     "PlaceBidHandler",
			"property_id": req.PropertyID,
			"user_id":     userID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":      bid.BidID,
		"property_id": bid.PropertyID,
		"user_id":     userID,
		"amount":      bid.Amount,
	})
}

// GetBidsByPropertyHandler handles GET /properties/:property_id/bids
func (h *BiddingHandler) GetBidsByPropertyHandler(c *gin.Context) {
	propertyID := c.Param("property_id")
	bids, err := h.service.GetBidsForProperty(propertyID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByPropertyHandler: error retrieving bids", map[string]any{
			"property_id": propertyID,
			"error":       err.Error(),
		})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByPropertyHandler", "bids retrieved successfully", map[string]any{
		"property_id": propertyID,
		"count":       len(resp),
	})
}

// GetWinningBidHandler handles GET /properties/:property_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	propertyID := c.Param("property_id")
	bid, err := h.service.GetWinningBid(propertyID)
	if err != nil {
		// winning bid not found -> 404
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"property_id": propertyID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{
			"property_id": propertyID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":      bid.BidID,
		"property_id": bid.PropertyID,
		"amount":      bid.Amount,
	})
}

// GetMyBiddingHandler handles GET /users/me/bidding
func (h *BiddingHandler) GetMyBiddingHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)
	properties, err := h.service.GetPropertiesByBidder(userID)
	if err != nil && !errors.Is(err, auctionerrors.ErrUserNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMyBiddingHandler: error retrieving properties", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := make([]helpers.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		resp = append(resp, helpers.ToPropertyResponse(property))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "properties retrieved successfully")
	helpers.LogSuccess("GetMyBiddingHandler", "properties retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}
