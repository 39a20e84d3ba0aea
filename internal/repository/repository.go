package repository

import (
	"fmt"
	"sort"
	"sync"

	"tradehub/internal/auctionerrors"
	model "tradehub/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the storage interface for the auction platform
type AuctionDB interface {
	CreateUser(user model.User) error
	GetUserByEmail(email string) (model.User, error)
	GetUserByID(id string) (model.User, error)
	SetUserVerified(email string) error
	AddBiddingPoints(userID string, delta int) error

	CreateProperty(property model.Property) error
	GetProperty(propertyID string) (model.Property, error)
	ListProperties(status model.PropertyStatus) ([]model.Property, error)
	UpdatePropertyStatus(propertyID string, next model.PropertyStatus) error

	RecordBid(bid model.Bid) error
	GetBidsByProperty(propertyID string) ([]model.Bid, error)
	GetWinningBid(propertyID string) (model.Bid, error)
	GetPropertiesByBidder(userID string) ([]model.Property, error)

	AddWishlistItem(item model.WishlistItem) error
	GetWishlistByUser(userID string) ([]model.WishlistItem, error)

	AddSellerRating(rating model.SellerRating) error
	GetRatingsBySeller(sellerID string) ([]model.SellerRating, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu         sync.RWMutex
	users      map[string]model.User          // key: userID -> value: user
	emails     map[string]string              // key: lowercased email -> value: userID
	properties map[string]model.Property      // key: propertyID -> value: property
	bids       map[string][]model.Bid         // key: propertyID -> value: list of bids
	userBids   map[string][]string            // key: userID -> value: list of propertyIDs user has bid on
	wishlists  map[string][]model.WishlistItem // key: userID
	ratings    map[string][]model.SellerRating // key: sellerID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:      make(map[string]model.User),
		emails:     make(map[string]string),
		properties: make(map[string]model.Property),
		bids:       make(map[string][]model.Bid),
		userBids:   make(map[string][]string),
		wishlists:  make(map[string][]model.WishlistItem),
		ratings:    make(map[string][]model.SellerRating),
	}
}

// CreateUser stores a new user, enforcing email uniqueness
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[user.Email]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrDuplicateEmail)
	}
	r.users[user.ID] = user
	r.emails[user.Email] = user.ID
	return nil
}

// GetUserByEmail returns the user registered under email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return r.users[id], nil
}

// GetUserByID returns the user with the given ID
func (r *MemoryRepo) GetUserByID(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// SetUserVerified marks the account under email as verified. Idempotent.
func (r *MemoryRepo) SetUserVerified(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.emails[email]
	if !ok {
		return fmt.Errorf("verify user %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	user := r.users[id]
	user.IsVerified = true
	r.users[id] = user
	return nil
}

// AddBiddingPoints adjusts a user's bidding points balance
func (r *MemoryRepo) AddBiddingPoints(userID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("add points for user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	user.BiddingPoints += delta
	r.users[userID] = user
	return nil
}

// CreateProperty stores a new listing
func (r *MemoryRepo) CreateProperty(property model.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[property.SellerID]; !ok {
		return fmt.Errorf("create property for seller %s: %w", property.SellerID, auctionerrors.ErrUserNotFound)
	}
	r.properties[property.ID] = property
	return nil
}

// GetProperty returns the listing with the given ID
func (r *MemoryRepo) GetProperty(propertyID string) (model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	property, ok := r.properties[propertyID]
	if !ok {
		return model.Property{}, fmt.Errorf("get property %s: %w", propertyID, auctionerrors.ErrPropertyNotFound)
	}
	return property, nil
}

// ListProperties returns listings filtered by status; empty status returns all
func (r *MemoryRepo) ListProperties(status model.PropertyStatus) ([]model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := make([]model.Property, 0, len(r.properties))
	for _, p := range r.properties {
		if status == "" || p.Status == status {
			properties = append(properties, p)
		}
	}
	sort.Slice(properties, func(i, j int) bool { return properties[i].EndTime.Before(properties[j].EndTime) })
	return properties, nil
}

// UpdatePropertyStatus advances a listing one step along pending -> active -> completed
func (r *MemoryRepo) UpdatePropertyStatus(propertyID string, next model.PropertyStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	property, ok := r.properties[propertyID]
	if !ok {
		return fmt.Errorf("update status of property %s: %w", propertyID, auctionerrors.ErrPropertyNotFound)
	}
	if !property.Status.CanTransitionTo(next) {
		return fmt.Errorf("update status of property %s from %s to %s: %w",
			propertyID, property.Status, next, auctionerrors.ErrInvalidTransition)
	}
	property.Status = next
	r.properties[propertyID] = property
	return nil
}

// RecordBid appends a bid and raises the property's current price. The
// compare-and-append is done under the write lock so that concurrent bids
// on the same property are serialized: a lower bid can never overwrite a
// higher accepted one, and exactly one record is stored per success.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	property, ok := r.properties[bid.PropertyID]
	if !ok {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, auctionerrors.ErrPropertyNotFound)
	}
	if property.Status != model.StatusActive {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, auctionerrors.ErrAuctionNotActive)
	}
	if !bid.CreatedAt.Before(property.EndTime) {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, auctionerrors.ErrAuctionEnded)
	}
	if bid.Amount <= property.CurrentPrice {
		return fmt.Errorf("record bid for property %s: amount %.2f <= current price %.2f: %w",
			bid.PropertyID, bid.Amount, property.CurrentPrice, auctionerrors.ErrBidTooLow)
	}

	r.bids[bid.PropertyID] = append(r.bids[bid.PropertyID], bid)
	property.CurrentPrice = bid.Amount
	r.properties[bid.PropertyID] = property

	for _, id := range r.userBids[bid.UserID] {
		if id == bid.PropertyID {
			return nil
		}
	}
	r.userBids[bid.UserID] = append(r.userBids[bid.UserID], bid.PropertyID)

	return nil
}

// GetBidsByProperty returns all bids for a listing
func (r *MemoryRepo) GetBidsByProperty(propertyID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[propertyID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for property %s: %w", propertyID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetWinningBid returns the highest bid for a listing, tie-break by earliest timestamp
func (r *MemoryRepo) GetWinningBid(propertyID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[propertyID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for property %s: %w", propertyID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// GetPropertiesByBidder returns all listings a user has bid on
func (r *MemoryRepo) GetPropertiesByBidder(userID string) ([]model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	propertyIDs, ok := r.userBids[userID]
	if !ok || len(propertyIDs) == 0 {
		return nil, fmt.Errorf("get properties for user %s: %w", userID, auctionerrors.ErrUserNoBids)
	}

	properties := make([]model.Property, 0, len(propertyIDs))
	for _, id := range propertyIDs {
		if property, exists := r.properties[id]; exists {
			properties = append(properties, property)
		}
	}
	return properties, nil
}

// AddWishlistItem stores a (user, property) pair, rejecting duplicates
func (r *MemoryRepo) AddWishlistItem(item model.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[item.PropertyID]; !ok {
		return fmt.Errorf("wishlist property %s: %w", item.PropertyID, auctionerrors.ErrPropertyNotFound)
	}
	for _, existing := range r.wishlists[item.UserID] {
		if existing.PropertyID == item.PropertyID {
			return fmt.Errorf("wishlist property %s for user %s: %w",
				item.PropertyID, item.UserID, auctionerrors.ErrDuplicateWishlist)
		}
	}
	r.wishlists[item.UserID] = append(r.wishlists[item.UserID], item)
	return nil
}

// GetWishlistByUser returns all wishlist items for a user
func (r *MemoryRepo) GetWishlistByUser(userID string) ([]model.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.WishlistItem(nil), r.wishlists[userID]...), nil
}

// AddSellerRating stores a rating for a seller
func (r *MemoryRepo) AddSellerRating(rating model.SellerRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[rating.SellerID]; !ok {
		return fmt.Errorf("rate seller %s: %w", rating.SellerID, auctionerrors.ErrUserNotFound)
	}
	r.ratings[rating.SellerID] = append(r.ratings[rating.SellerID], rating)
	return nil
}

// GetRatingsBySeller returns all ratings received by a seller
func (r *MemoryRepo) GetRatingsBySeller(sellerID string) ([]model.SellerRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.SellerRating(nil), r.ratings[sellerID]...), nil
}

// SeedProperty inserts a listing directly, bypassing validation. Intended for tests only.
func (r *MemoryRepo) SeedProperty(property model.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties[property.ID] = property
}

// SeedUser inserts a user directly, bypassing validation. Intended for tests only.
func (r *MemoryRepo) SeedUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	r.emails[user.Email] = user.ID
}
