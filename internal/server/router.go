package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accounts "tradehub/internal/accountService"
	bidding "tradehub/internal/biddingService"
	catalog "tradehub/internal/catalogService"
	community "tradehub/internal/communityService"
	handler "tradehub/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	accountSvc *accounts.AccountService,
	catalogSvc *catalog.CatalogService,
	biddingSvc *bidding.BiddingService,
	communitySvc *community.CommunityService,
	sessions *accounts.SessionManager,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	accountHandler := handler.NewAccountHandler(accountSvc)
	propertyHandler := handler.NewPropertyHandler(catalogSvc)
	biddingHandler := handler.NewBiddingHandler(biddingSvc)
	communityHandler := handler.NewCommunityHandler(communitySvc)

	// public surface
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "tradehub", "status": "ok"})
	})
	router.POST("/register", accountHandler.RegisterHandler)
	router.POST("/login", accountHandler.LoginHandler)
	router.GET("/verify_email/:token", accountHandler.VerifyEmailHandler)

	properties := router.Group("/properties")
	{
		properties.GET("", propertyHandler.ListPropertiesHandler)
		properties.GET("/:property_id", propertyHandler.GetPropertyHandler)
		properties.GET("/:property_id/bids", biddingHandler.GetBidsByPropertyHandler)
		properties.GET("/:property_id/winning", biddingHandler.GetWinningBidHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.GET("/:seller_id/ratings", communityHandler.GetSellerRatingsHandler)
	}

	// authenticated surface
	authed := router.Group("", AuthRequiredMiddleware(sessions))
	{
		authed.POST("/property/new", propertyHandler.CreatePropertyHandler)
		authed.POST("/properties/:property_id/activate", propertyHandler.ActivatePropertyHandler)
		authed.POST("/properties/:property_id/complete", propertyHandler.CompletePropertyHandler)

		authed.POST("/bids", biddingHandler.PlaceBidHandler)

		authed.GET("/users/me", accountHandler.MeHandler)
		authed.GET("/users/me/bidding", biddingHandler.GetMyBiddingHandler)

		authed.POST("/wishlist", communityHandler.AddWishlistHandler)
		authed.GET("/wishlist", communityHandler.GetWishlistHandler)

		authed.POST("/sellers/:seller_id/ratings", communityHandler.RateSellerHandler)
	}

	return router
}
