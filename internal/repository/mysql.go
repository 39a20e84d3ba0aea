package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"tradehub/internal/auctionerrors"
	model "tradehub/internal/models"
)

// MySQLRepo is a MySQL-backed implementation of AuctionDB
type MySQLRepo struct {
	db *sql.DB
}

// NewMySQLRepo opens a MySQL connection pool, verifies it and bootstraps
// the schema.
func NewMySQLRepo(dsn string) (*MySQLRepo, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	// DATETIME columns must scan into time.Time
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	repo := &MySQLRepo{db: db}
	if err := repo.initSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

// Close releases the underlying connection pool
func (r *MySQLRepo) Close() error {
	return r.db.Close()
}

func (r *MySQLRepo) initSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id CHAR(36) PRIMARY KEY,
			email VARCHAR(120) NOT NULL UNIQUE,
			password_hash VARCHAR(200) NOT NULL,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			account_type VARCHAR(20) NOT NULL DEFAULT 'standard',
			bidding_points INT NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS properties (
			id CHAR(36) PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			description TEXT NOT NULL,
			starting_price DOUBLE NOT NULL,
			current_price DOUBLE NOT NULL,
			images JSON,
			end_time DATETIME NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			seller_id CHAR(36) NOT NULL,
			CONSTRAINT fk_properties_seller FOREIGN KEY (seller_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS bids (
			id CHAR(36) PRIMARY KEY,
			property_id CHAR(36) NOT NULL,
			user_id CHAR(36) NOT NULL,
			amount DOUBLE NOT NULL,
			created_at DATETIME(6) NOT NULL,
			CONSTRAINT fk_bids_property FOREIGN KEY (property_id) REFERENCES properties(id),
			CONSTRAINT fk_bids_user FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist_items (
			id CHAR(36) PRIMARY KEY,
			user_id CHAR(36) NOT NULL,
			property_id CHAR(36) NOT NULL,
			created_at DATETIME NOT NULL,
			UNIQUE KEY uq_wishlist (user_id, property_id),
			CONSTRAINT fk_wishlist_user FOREIGN KEY (user_id) REFERENCES users(id),
			CONSTRAINT fk_wishlist_property FOREIGN KEY (property_id) REFERENCES properties(id)
		)`,
		`CREATE TABLE IF NOT EXISTS seller_ratings (
			id CHAR(36) PRIMARY KEY,
			rating INT NOT NULL,
			comment TEXT,
			seller_id CHAR(36) NOT NULL,
			rater_id CHAR(36) NOT NULL,
			created_at DATETIME NOT NULL,
			CONSTRAINT fk_ratings_seller FOREIGN KEY (seller_id) REFERENCES users(id),
			CONSTRAINT fk_ratings_rater FOREIGN KEY (rater_id) REFERENCES users(id)
		)`,
	}

	for _, stmt := range schema {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// CreateUser stores a new user, enforcing email uniqueness
func (r *MySQLRepo) CreateUser(user model.User) error {
	var exists int
	err := r.db.QueryRow("SELECT COUNT(1) FROM users WHERE email = ?", user.Email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	if exists > 0 {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrDuplicateEmail)
	}

	_, err = r.db.Exec(
		"INSERT INTO users (id, email, password_hash, is_verified, account_type, bidding_points, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.PasswordHash, user.IsVerified, user.AccountType, user.BiddingPoints, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	return nil
}

func (r *MySQLRepo) scanUser(row *sql.Row, key string) (model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsVerified,
		&user.AccountType, &user.BiddingPoints, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", key, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", key, err)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under email
func (r *MySQLRepo) GetUserByEmail(email string) (model.User, error) {
	row := r.db.QueryRow(
		"SELECT id, email, password_hash, is_verified, account_type, bidding_points, created_at FROM users WHERE email = ?", email)
	return r.scanUser(row, email)
}

// GetUserByID returns the user with the given ID
func (r *MySQLRepo) GetUserByID(id string) (model.User, error) {
	row := r.db.QueryRow(
		"SELECT id, email, password_hash, is_verified, account_type, bidding_points, created_at FROM users WHERE id = ?", id)
	return r.scanUser(row, id)
}

// SetUserVerified marks the account under email as verified. Idempotent.
func (r *MySQLRepo) SetUserVerified(email string) error {
	res, err := r.db.Exec("UPDATE users SET is_verified = TRUE WHERE email = ?", email)
	if err != nil {
		return fmt.Errorf("verify user %s: %w", email, err)
	}
	// 0 rows affected is fine when the flag was already set; only a
	// missing row is an error.
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRow("SELECT COUNT(1) FROM users WHERE email = ?", email).Scan(&exists); err != nil {
			return fmt.Errorf("verify user %s: %w", email, err)
		}
		if exists == 0 {
			return fmt.Errorf("verify user %s: %w", email, auctionerrors.ErrUserNotFound)
		}
	}
	return nil
}

// AddBiddingPoints adjusts a user's bidding points balance
func (r *MySQLRepo) AddBiddingPoints(userID string, delta int) error {
	res, err := r.db.Exec("UPDATE users SET bidding_points = bidding_points + ? WHERE id = ?", delta, userID)
	if err != nil {
		return fmt.Errorf("add points for user %s: %w", userID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("add points for user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return nil
}

// CreateProperty stores a new listing
func (r *MySQLRepo) CreateProperty(property model.Property) error {
	images, err := json.Marshal(property.Images)
	if err != nil {
		return fmt.Errorf("create property %s: %w", property.ID, err)
	}
	_, err = r.db.Exec(
		"INSERT INTO properties (id, title, description, starting_price, current_price, images, end_time, status, seller_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		property.ID, property.Title, property.Description, property.StartingPrice,
		property.CurrentPrice, images, property.EndTime, property.Status, property.SellerID,
	)
	if err != nil {
		return fmt.Errorf("create property %s: %w", property.ID, err)
	}
	return nil
}

func scanProperty(scan func(dest ...any) error) (model.Property, error) {
	var property model.Property
	var images []byte
	err := scan(&property.ID, &property.Title, &property.Description, &property.StartingPrice,
		&property.CurrentPrice, &images, &property.EndTime, &property.Status, &property.SellerID)
	if err != nil {
		return model.Property{}, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &property.Images); err != nil {
			return model.Property{}, fmt.Errorf("decode images for property %s: %w", property.ID, err)
		}
	}
	return property, nil
}

const propertyColumns = "id, title, description, starting_price, current_price, images, end_time, status, seller_id"

// GetProperty returns the listing with the given ID
func (r *MySQLRepo) GetProperty(propertyID string) (model.Property, error) {
	row := r.db.QueryRow("SELECT "+propertyColumns+" FROM properties WHERE id = ?", propertyID)
	property, err := scanProperty(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Property{}, fmt.Errorf("get property %s: %w", propertyID, auctionerrors.ErrPropertyNotFound)
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("get property %s: %w", propertyID, err)
	}
	return property, nil
}

// ListProperties returns listings filtered by status; empty status returns all
func (r *MySQLRepo) ListProperties(status model.PropertyStatus) ([]model.Property, error) {
	query := "SELECT " + propertyColumns + " FROM properties ORDER BY end_time"
	args := []any{}
	if status != "" {
		query = "SELECT " + propertyColumns + " FROM properties WHERE status = ? ORDER BY end_time"
		args = append(args, status)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var properties []model.Property
	for rows.Next() {
		property, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list properties: %w", err)
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}

// UpdatePropertyStatus advances a listing one step along pending -> active -> completed
func (r *MySQLRepo) UpdatePropertyStatus(propertyID string, next model.PropertyStatus) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("update status of property %s: %w", propertyID, err)
	}
	defer tx.Rollback()

	var current model.PropertyStatus
	err = tx.QueryRow("SELECT status FROM properties WHERE id = ? FOR UPDATE", propertyID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update status of property %s: %w", propertyID, auctionerrors.ErrPropertyNotFound)
	}
	if err != nil {
		return fmt.Errorf("update status of property %s: %w", propertyID, err)
	}
	if !current.CanTransitionTo(next) {
		return fmt.Errorf("update status of property %s from %s to %s: %w",
			propertyID, current, next, auctionerrors.ErrInvalidTransition)
	}

	if _, err := tx.Exec("UPDATE properties SET status = ? WHERE id = ?", next, propertyID); err != nil {
		return fmt.Errorf("update status of property %s: %w", propertyID, err)
	}
	return tx.Commit()
}

// RecordBid appends a bid and raises the property's current price inside a
// single transaction. The row lock taken by FOR UPDATE serializes
// concurrent bids on the same property.
func (r *MySQLRepo) RecordBid(bid model.Bid) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, err)
	}
	defer tx.Rollback()

	var status model.PropertyStatus
	var currentPrice float64
	var endTime time.Time
	err = tx.QueryRow("SELECT status, current_price, end_time FROM properties WHERE id = ? FOR UPDATE",
		bid.PropertyID).Scan(&status, &currentPrice, &endTime)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, auctionerrors.ErrPropertyNotFound)
	}
	if err != nil {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, err)
	}

	if status != model.StatusActive {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, auctionerrors.ErrAuctionNotActive)
	}
	if !bid.CreatedAt.Before(endTime) {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, auctionerrors.ErrAuctionEnded)
	}
	if bid.Amount <= currentPrice {
		return fmt.Errorf("record bid for property %s: amount %.2f <= current price %.2f: %w",
			bid.PropertyID, bid.Amount, currentPrice, auctionerrors.ErrBidTooLow)
	}

	if _, err := tx.Exec("INSERT INTO bids (id, property_id, user_id, amount, created_at) VALUES (?, ?, ?, ?, ?)",
		bid.BidID, bid.PropertyID, bid.UserID, bid.Amount, bid.CreatedAt); err != nil {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, err)
	}
	if _, err := tx.Exec("UPDATE properties SET current_price = ? WHERE id = ?", bid.Amount, bid.PropertyID); err != nil {
		return fmt.Errorf("record bid for property %s: %w", bid.PropertyID, err)
	}
	return tx.Commit()
}

// GetBidsByProperty returns all bids for a listing
func (r *MySQLRepo) GetBidsByProperty(propertyID string) ([]model.Bid, error) {
	rows, err := r.db.Query(
		"SELECT id, property_id, user_id, amount, created_at FROM bids WHERE property_id = ? ORDER BY created_at", propertyID)
	if err != nil {
		return nil, fmt.Errorf("get bids for property %s: %w", propertyID, err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.BidID, &b.PropertyID, &b.UserID, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("get bids for property %s: %w", propertyID, err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for property %s: %w", propertyID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for property %s: %w", propertyID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a listing, tie-break by earliest timestamp
func (r *MySQLRepo) GetWinningBid(propertyID string) (model.Bid, error) {
	row := r.db.QueryRow(
		"SELECT id, property_id, user_id, amount, created_at FROM bids WHERE property_id = ? ORDER BY amount DESC, created_at ASC LIMIT 1",
		propertyID)
	var b model.Bid
	err := row.Scan(&b.BidID, &b.PropertyID, &b.UserID, &b.Amount, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get winning bid for property %s: %w", propertyID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get winning bid for property %s: %w", propertyID, err)
	}
	return b, nil
}

// GetPropertiesByBidder returns all listings a user has bid on
func (r *MySQLRepo) GetPropertiesByBidder(userID string) ([]model.Property, error) {
	rows, err := r.db.Query(
		"SELECT DISTINCT p.id, p.title, p.description, p.starting_price, p.current_price, p.images, p.end_time, p.status, p.seller_id "+
			"FROM properties p JOIN bids b ON b.property_id = p.id WHERE b.user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("get properties for user %s: %w", userID, err)
	}
	defer rows.Close()

	var properties []model.Property
	for rows.Next() {
		property, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("get properties for user %s: %w", userID, err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get properties for user %s: %w", userID, err)
	}
	if len(properties) == 0 {
		return nil, fmt.Errorf("get properties for user %s: %w", userID, auctionerrors.ErrUserNoBids)
	}
	return properties, nil
}

// AddWishlistItem stores a (user, property) pair, rejecting duplicates
func (r *MySQLRepo) AddWishlistItem(item model.WishlistItem) error {
	_, err := r.db.Exec(
		"INSERT INTO wishlist_items (id, user_id, property_id, created_at) VALUES (?, ?, ?, ?)",
		item.ID, item.UserID, item.PropertyID, item.CreatedAt)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("wishlist property %s for user %s: %w",
				item.PropertyID, item.UserID, auctionerrors.ErrDuplicateWishlist)
		}
		return fmt.Errorf("wishlist property %s for user %s: %w", item.PropertyID, item.UserID, err)
	}
	return nil
}

// GetWishlistByUser returns all wishlist items for a user
func (r *MySQLRepo) GetWishlistByUser(userID string) ([]model.WishlistItem, error) {
	rows, err := r.db.Query(
		"SELECT id, user_id, property_id, created_at FROM wishlist_items WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist for user %s: %w", userID, err)
	}
	defer rows.Close()

	items := []model.WishlistItem{}
	for rows.Next() {
		var item model.WishlistItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.PropertyID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("get wishlist for user %s: %w", userID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddSellerRating stores a rating for a seller
func (r *MySQLRepo) AddSellerRating(rating model.SellerRating) error {
	_, err := r.db.Exec(
		"INSERT INTO seller_ratings (id, rating, comment, seller_id, rater_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		rating.ID, rating.Rating, rating.Comment, rating.SellerID, rating.RaterID, rating.CreatedAt)
	if err != nil {
		return fmt.Errorf("rate seller %s: %w", rating.SellerID, err)
	}
	return nil
}

// GetRatingsBySeller returns all ratings received by a seller
func (r *MySQLRepo) GetRatingsBySeller(sellerID string) ([]model.SellerRating, error) {
	rows, err := r.db.Query(
		"SELECT id, rating, comment, seller_id, rater_id, created_at FROM seller_ratings WHERE seller_id = ? ORDER BY created_at DESC",
		sellerID)
	if err != nil {
		return nil, fmt.Errorf("get ratings for seller %s: %w", sellerID, err)
	}
	defer rows.Close()

	ratings := []model.SellerRating{}
	for rows.Next() {
		var rating model.SellerRating
		var comment sql.NullString
		if err := rows.Scan(&rating.ID, &rating.Rating, &comment, &rating.SellerID, &rating.RaterID, &rating.CreatedAt); err != nil {
			return nil, fmt.Errorf("get ratings for seller %s: %w", sellerID, err)
		}
		rating.Comment = comment.String
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func isDuplicateKey(err error) bool {
	// MySQL error 1062: duplicate entry for a unique key
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
