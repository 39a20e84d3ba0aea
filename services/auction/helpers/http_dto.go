package helpers

// Request/Response DTOs
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PlaceBidRequest struct {
	PropertyID string  `json:"property_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

type WishlistRequest struct {
	PropertyID string `json:"property_id" binding:"required"`
}

type RateSellerRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	IsVerified    bool   `json:"is_verified"`
	AccountType   string `json:"account_type"`
	BiddingPoints int    `json:"bidding_points"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type BidResponse struct {
	BidID      string  `json:"bid_id"`
	PropertyID string  `json:"property_id"`
	UserID     string  `json:"user_id"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}

type PropertyResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	StartingPrice float64  `json:"starting_price"`
	CurrentPrice  float64  `json:"current_price"`
	Images        []string `json:"images"`
	EndTime       string   `json:"end_time"`
	Status        string   `json:"status"`
	SellerID      string   `json:"seller_id"`
}
