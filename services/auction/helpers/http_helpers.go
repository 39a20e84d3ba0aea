package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradehub/internal/auctionerrors"
	"tradehub/internal/models"
	"tradehub/utils"
)

// UserIDKey is the gin context key under which the auth middleware stores
// the authenticated user's ID
const UserIDKey = "auth_user_id"

// CurrentUserID returns the authenticated user's ID from the request
// context, or empty if the request is anonymous
func CurrentUserID(c *gin.Context) string {
	id, _ := c.Get(UserIDKey)
	userID, _ := id.(string)
	return userID
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrDuplicateEmail):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, auctionerrors.ErrNotVerified):
		return http.StatusForbidden, "please verify your email first"
	case errors.Is(err, auctionerrors.ErrInvalidToken):
		return http.StatusBadRequest, "confirmation link is invalid"
	case errors.Is(err, auctionerrors.ErrExpiredToken):
		return http.StatusGone, "confirmation link has expired"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "invalid status transition"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusUnprocessableEntity, "auction is not active"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusGone, "auction has ended"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrDuplicateWishlist):
		return http.StatusConflict, "property already in wishlist"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrPropertyNotFound):
		return http.StatusNotFound, "property not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for property"
	case errors.Is(err, auctionerrors.ErrUserNoBids):
		return http.StatusOK, "no properties found for user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToUserResponse converts a user model into its API shape
func ToUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		IsVerified:    user.IsVerified,
		AccountType:   string(user.AccountType),
		BiddingPoints: user.BiddingPoints,
	}
}

// ToBidResponse converts a bid model into its API shape
func ToBidResponse(bid models.Bid) BidResponse {
	return BidResponse{
		BidID:      bid.BidID,
		PropertyID: bid.PropertyID,
		UserID:     bid.UserID,
		Amount:     bid.Amount,
		CreatedAt:  bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPropertyResponse converts a property model into its API shape
func ToPropertyResponse(property models.Property) PropertyResponse {
	images := property.Images
	if images == nil {
		images = []string{}
	}
	return PropertyResponse{
		ID:            property.ID,
		Title:         property.Title,
		Description:   property.Description,
		StartingPrice: property.StartingPrice,
		CurrentPrice:  property.CurrentPrice,
		Images:        images,
		EndTime:       property.EndTime.UTC().Format(time.RFC3339),
		Status:        string(property.Status),
		SellerID:      property.SellerID,
	}
}
