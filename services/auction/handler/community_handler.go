package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "tradehub/internal/models"
	"tradehub/services/auction/helpers"
	"tradehub/utils"
)

type CommunityServiceInterface interface {
	AddToWishlist(userID, propertyID string) (model.WishlistItem, error)
	GetWishlist(userID string) ([]model.WishlistItem, error)
	RateSeller(sellerID, raterID string, rating int, comment string) (model.SellerRating, error)
	SellerRatings(sellerID string) ([]model.SellerRating, error)
}

type CommunityHandler struct {
	service CommunityServiceInterface
}

func NewCommunityHandler(service CommunityServiceInterface) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// AddWishlistHandler handles POST /wishlist
func (h *CommunityHandler) AddWishlistHandler(c *gin.Context) {
	var req helpers.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddWishlistHandler", err)
		return
	}

	userID := helpers.CurrentUserID(c)

	item, err := h.service.AddToWishlist(userID, req.PropertyID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddWishlistHandler: failed to add wishlist item", map[string]any{
			"user_id":     userID,
			"property_id": req.PropertyID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "property added to wishlist")
	helpers.LogSuccess("AddWishlistHandler", "property added to wishlist", map[string]any{
		"user_id":     userID,
		"property_id": req.PropertyID,
	})
}

// GetWishlistHandler handles GET /wishlist
func (h *CommunityHandler) GetWishlistHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)

	items, err := h.service.GetWishlist(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWishlistHandler: failed to load wishlist", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	if items == nil {
		items = []model.WishlistItem{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "wishlist retrieved successfully")
}

// RateSellerHandler handles POST /sellers/:seller_id/ratings
func (h *CommunityHandler) RateSellerHandler(c *gin.Context) {
	var req helpers.RateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RateSellerHandler", err)
		return
	}

	sellerID := c.Param("seller_id")
	raterID := helpers.CurrentUserID(c)

	rating, err := h.service.RateSeller(sellerID, raterID, req.Rating, req.Comment)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RateSellerHandler: failed to rate seller", map[string]any{
			"seller_id": sellerID,
			"rater_id":  raterID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, rating, "seller rated successfully")
	helpers.LogSuccess("RateSellerHandler", "seller rated successfully", map[string]any{
		"seller_id": sellerID,
		"rater_id":  raterID,
		"rating":    req.Rating,
	})
}

// GetSellerRatingsHandler handles GET /sellers/:seller_id/ratings
func (h *CommunityHandler) GetSellerRatingsHandler(c *gin.Context) {
	sellerID := c.Param("seller_id")

	ratings, err := h.service.SellerRatings(sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetSellerRatingsHandler: failed to load ratings", map[string]any{
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return
	}

	if ratings == nil {
		ratings = []model.SellerRating{}
	}
	utils.JSONResponse(c, http.StatusOK, ratings, "ratings retrieved successfully")
}
