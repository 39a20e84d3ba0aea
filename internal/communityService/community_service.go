package community

import (
	"fmt"
	"time"

	"tradehub/internal/auctionerrors"
	"tradehub/internal/models"
	"tradehub/internal/repository"
	"tradehub/utils"
)

// CommunityService covers wishlists and seller ratings
type CommunityService struct {
	repo repository.AuctionDB
}

// NewCommunityService creates a new CommunityService instance
func NewCommunityService(repo repository.AuctionDB) *CommunityService {
	return &CommunityService{
		repo: repo,
	}
}

// AddToWishlist records that a user is watching a property. Each
// (user, property) pair is stored at most once.
func (s *CommunityService) AddToWishlist(userID, propertyID string) (models.WishlistItem, error) {
	if userID == "" || propertyID == "" {
		return models.WishlistItem{}, fmt.Errorf("service: %w - missing userID or propertyID", auctionerrors.ErrInvalidInput)
	}

	item := models.WishlistItem{
		ID:         utils.GenerateID(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.AddWishlistItem(item); err != nil {
		return models.WishlistItem{}, fmt.Errorf("service: failed to wishlist property %s for user %s: %w", propertyID, userID, err)
	}
	return item, nil
}

// GetWishlist returns a user's wishlist
func (s *CommunityService) GetWishlist(userID string) ([]models.WishlistItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	items, err := s.repo.GetWishlistByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get wishlist for user %s: %w", userID, err)
	}
	return items, nil
}

// RateSeller records a rating for a seller. Ratings are 1-5, comments are
// optional, and sellers cannot rate themselves.
func (s *CommunityService) RateSeller(sellerID, raterID string, rating int, comment string) (models.SellerRating, error) {
	if sellerID == "" || raterID == "" {
		return models.SellerRating{}, fmt.Errorf("service: %w - missing sellerID or raterID", auctionerrors.ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return models.SellerRating{}, fmt.Errorf("service: %w - rating must be 1-5", auctionerrors.ErrInvalidInput)
	}
	if sellerID == raterID {
		return models.SellerRating{}, fmt.Errorf("service: %w - sellers cannot rate themselves", auctionerrors.ErrInvalidInput)
	}

	sellerRating := models.SellerRating{
		ID:        utils.GenerateID(),
		Rating:    rating,
		Comment:   comment,
		SellerID:  sellerID,
		RaterID:   raterID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AddSellerRating(sellerRating); err != nil {
		return models.SellerRating{}, fmt.Errorf("service: failed to rate seller %s: %w", sellerID, err)
	}
	return sellerRating, nil
}

// SellerRatings returns all ratings received by a seller
func (s *CommunityService) SellerRatings(sellerID string) ([]models.SellerRating, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", auctionerrors.ErrInvalidInput)
	}

	ratings, err := s.repo.GetRatingsBySeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get ratings for seller %s: %w", sellerID, err)
	}
	return ratings, nil
}
