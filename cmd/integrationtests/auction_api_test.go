package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const endTimeLayout = "2006-01-02T15:04"

// registerAndVerify walks a user through registration, email verification
// and login, returning the session token.
func registerAndVerify(t *testing.T, env *TestEnv, email, password string) string {
	t.Helper()

	_, w := env.DoJSON(t, http.MethodPost, "/register", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	tok := env.Mailer.LastVerificationToken(t)
	_, w = env.DoJSON(t, http.MethodGet, "/verify_email/"+tok, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := env.DoJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	session, _ := Data(t, resp)["token"].(string)
	require.NotEmpty(t, session)
	return session
}

// Full registration -> verification -> login walk-through
func TestRegistrationFlow(t *testing.T) {
	env := SetupTestEnv()

	// register
	resp, w := env.DoJSON(t, http.MethodPost, "/register", "", map[string]string{
		"email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, false, Data(t, resp)["is_verified"])

	// duplicate registration
	_, w = env.DoJSON(t, http.MethodPost, "/register", "", map[string]string{
		"email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// login before verification
	_, w = env.DoJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// verify via the mailed token
	tok := env.Mailer.LastVerificationToken(t)
	_, w = env.DoJSON(t, http.MethodGet, "/verify_email/"+tok, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// wrong password still rejected
	_, w = env.DoJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// login succeeds after verification
	resp, w = env.DoJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	session, _ := Data(t, resp)["token"].(string)
	require.NotEmpty(t, session)

	// session works against the authenticated surface
	resp, w = env.DoJSON(t, http.MethodGet, "/users/me", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "a@x.com", Data(t, resp)["email"])
}

// Garbled and expired verification links
func TestVerifyEmailRejectsBadTokens(t *testing.T) {
	env := SetupTestEnv()

	_, w := env.DoJSON(t, http.MethodGet, "/verify_email/not-a-real-token", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = env.DoJSON(t, http.MethodPost, "/register", "", map[string]string{
		"email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	tok := env.Mailer.LastVerificationToken(t)
	_, w = env.DoJSON(t, http.MethodGet, "/verify_email/"+tok+"x", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Authenticated surface rejects anonymous requests
func TestAuthRequired(t *testing.T) {
	env := SetupTestEnv()

	for _, call := range []struct {
		method string
		url    string
	}{
		{http.MethodPost, "/bids"},
		{http.MethodPost, "/property/new"},
		{http.MethodGet, "/users/me"},
		{http.MethodGet, "/wishlist"},
	} {
		_, w := env.DoJSON(t, call.method, call.url, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", call.method, call.url)
	}

	_, w := env.DoJSON(t, http.MethodGet, "/users/me", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Listing lifecycle and the bidding scenario: start at 100, bid 50 (too
// low), 150 (accepted), 120 (too low).
func TestListingAndBiddingFlow(t *testing.T) {
	env := SetupTestEnv()

	seller := registerAndVerify(t, env, "seller@x.com", "pw1")
	buyer := registerAndVerify(t, env, "buyer@x.com", "pw2")

	// create listing
	endTime := time.Now().Add(48 * time.Hour).UTC().Format(endTimeLayout)
	resp, w := env.DoMultipart(t, "/property/new", seller, map[string]string{
		"title":          "Lakeside cabin",
		"description":    "Two bedrooms, one dock",
		"starting_price": "100",
		"end_time":       endTime,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := Data(t, resp)
	propertyID, _ := data["id"].(string)
	require.NotEmpty(t, propertyID)
	require.Equal(t, "pending", data["status"])
	require.Equal(t, 100.0, data["current_price"])

	// bidding on a pending auction fails
	_, w = env.DoJSON(t, http.MethodPost, "/bids", buyer, map[string]any{
		"property_id": propertyID, "amount": 150,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// activate
	resp, w = env.DoJSON(t, http.MethodPost, "/properties/"+propertyID+"/activate", seller, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "active", Data(t, resp)["status"])

	// repeated activation is rejected
	_, w = env.DoJSON(t, http.MethodPost, "/properties/"+propertyID+"/activate", seller, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// bid below starting price
	_, w = env.DoJSON(t, http.MethodPost, "/bids", buyer, map[string]any{
		"property_id": propertyID, "amount": 50,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// acceptable bid
	resp, w = env.DoJSON(t, http.MethodPost, "/bids", buyer, map[string]any{
		"property_id": propertyID, "amount": 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 150.0, Data(t, resp)["amount"])

	// lower follow-up bid
	_, w = env.DoJSON(t, http.MethodPost, "/bids", buyer, map[string]any{
		"property_id": propertyID, "amount": 120,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// current price tracks the accepted bid
	resp, w = env.DoJSON(t, http.MethodGet, "/properties/"+propertyID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 150.0, Data(t, resp)["current_price"])

	// winning bid
	resp, w = env.DoJSON(t, http.MethodGet, "/properties/"+propertyID+"/winning", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 150.0, Data(t, resp)["amount"])

	// exactly one ledger entry
	resp, w = env.DoJSON(t, http.MethodGet, "/properties/"+propertyID+"/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids, _ := resp["data"].([]any)
	require.Len(t, bids, 1)

	// complete, then bidding is rejected again
	_, w = env.DoJSON(t, http.MethodPost, "/properties/"+propertyID+"/complete", seller, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = env.DoJSON(t, http.MethodPost, "/bids", buyer, map[string]any{
		"property_id": propertyID, "amount": 200,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// Listing validation through the HTTP surface
func TestCreateListingValidation(t *testing.T) {
	env := SetupTestEnv()
	seller := registerAndVerify(t, env, "seller@x.com", "pw1")

	future := time.Now().Add(48 * time.Hour).UTC().Format(endTimeLayout)

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{
			name: "missing_title",
			fields: map[string]string{
				"description": "desc", "starting_price": "100", "end_time": future,
			},
		},
		{
			name: "zero_price",
			fields: map[string]string{
				"title": "t", "description": "desc", "starting_price": "0", "end_time": future,
			},
		},
		{
			name: "bad_end_time_format",
			fields: map[string]string{
				"title": "t", "description": "desc", "starting_price": "100", "end_time": "tomorrow",
			},
		},
		{
			name: "end_time_in_past",
			fields: map[string]string{
				"title": "t", "description": "desc", "starting_price": "100",
				"end_time": time.Now().Add(-time.Hour).UTC().Format(endTimeLayout),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, w := env.DoMultipart(t, "/property/new", seller, tc.fields)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// Wishlist and seller ratings
func TestWishlistAndRatings(t *testing.T) {
	env := SetupTestEnv()

	seller := registerAndVerify(t, env, "seller@x.com", "pw1")
	buyer := registerAndVerify(t, env, "buyer@x.com", "pw2")

	endTime := time.Now().Add(48 * time.Hour).UTC().Format(endTimeLayout)
	resp, w := env.DoMultipart(t, "/property/new", seller, map[string]string{
		"title": "Cottage", "description": "desc", "starting_price": "100", "end_time": endTime,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	propertyID, _ := Data(t, resp)["id"].(string)
	sellerID, _ := Data(t, resp)["seller_id"].(string)

	// wishlist add + duplicate
	_, w = env.DoJSON(t, http.MethodPost, "/wishlist", buyer, map[string]string{"property_id": propertyID})
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = env.DoJSON(t, http.MethodPost, "/wishlist", buyer, map[string]string{"property_id": propertyID})
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = env.DoJSON(t, http.MethodGet, "/wishlist", buyer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items, _ := resp["data"].([]any)
	require.Len(t, items, 1)

	// rate the seller
	_, w = env.DoJSON(t, http.MethodPost, fmt.Sprintf("/sellers/%s/ratings", sellerID), buyer, map[string]any{
		"rating": 5, "comment": "smooth deal",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// self-rating rejected
	_, w = env.DoJSON(t, http.MethodPost, fmt.Sprintf("/sellers/%s/ratings", sellerID), seller, map[string]any{
		"rating": 5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// ratings are public
	resp, w = env.DoJSON(t, http.MethodGet, fmt.Sprintf("/sellers/%s/ratings", sellerID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ratings, _ := resp["data"].([]any)
	require.Len(t, ratings, 1)
}
