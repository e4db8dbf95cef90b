package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"coderrBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	businessMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleBusiness))
	customerMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleCustomer))
	staffMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("staff"))

	mux := pat.New()

	// Auth
	mux.Post("/registration", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/logout", authMiddleware.ThenFunc(app.userHandler.LogOut))

	// Profiles
	mux.Get("/profile/:user_id", authMiddleware.ThenFunc(app.profileHandler.GetProfile))
	mux.Add("PATCH", "/profile/:user_id", authMiddleware.ThenFunc(app.profileHandler.UpdateProfile))
	mux.Post("/profile/:user_id/file", authMiddleware.ThenFunc(app.profileHandler.UploadProfileFile))
	mux.Get("/profiles/business", authMiddleware.ThenFunc(app.profileHandler.GetBusinessProfiles))
	mux.Get("/profiles/business/:user_id", authMiddleware.ThenFunc(app.profileHandler.GetBusinessProfileByID))
	mux.Get("/profiles/customer", authMiddleware.ThenFunc(app.profileHandler.GetCustomerProfiles))
	mux.Get("/profiles/customer/:user_id", authMiddleware.ThenFunc(app.profileHandler.GetCustomerProfileByID))
	mux.Get("/images/profiles/:filename", standardMiddleware.ThenFunc(app.profileHandler.ServeProfileFile))

	// Offers
	mux.Post("/offers", businessMiddleware.ThenFunc(app.offerHandler.CreateOffer))
	mux.Get("/offers", standardMiddleware.ThenFunc(app.offerHandler.GetOffers))
	mux.Get("/offers/:id", standardMiddleware.ThenFunc(app.offerHandler.GetOfferByID))
	mux.Add("PATCH", "/offers/:id", authMiddleware.ThenFunc(app.offerHandler.UpdateOffer))
	mux.Del("/offers/:id", authMiddleware.ThenFunc(app.offerHandler.DeleteOffer))
	mux.Get("/offerdetails/:id", authMiddleware.ThenFunc(app.offerHandler.GetOfferDetailByID))
	mux.Post("/offers/:id/image", authMiddleware.ThenFunc(app.offerHandler.UploadOfferImage))
	mux.Get("/images/offers/:filename", standardMiddleware.ThenFunc(app.offerHandler.ServeOfferImage))

	// Orders
	mux.Post("/orders", customerMiddleware.ThenFunc(app.orderHandler.CreateOrder))
	mux.Get("/orders", authMiddleware.ThenFunc(app.orderHandler.GetOrders))
	mux.Get("/orders/:id", authMiddleware.ThenFunc(app.orderHandler.GetOrderByID))
	mux.Add("PATCH", "/orders/:id", authMiddleware.ThenFunc(app.orderHandler.UpdateOrderStatus))
	mux.Del("/orders/:id", staffMiddleware.ThenFunc(app.orderHandler.DeleteOrder))

	// Reviews
	mux.Post("/reviews", customerMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/reviews", authMiddleware.ThenFunc(app.reviewHandler.GetReviews))
	mux.Get("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.GetReviewByID))
	mux.Add("PATCH", "/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))

	// Statistics
	mux.Get("/base-info", standardMiddleware.ThenFunc(app.statisticsHandler.GetBaseInfo))
	mux.Get("/order-count/:business_user_id", authMiddleware.ThenFunc(app.statisticsHandler.GetOrderCount))
	mux.Get("/completed-order-count/:business_user_id", authMiddleware.ThenFunc(app.statisticsHandler.GetCompletedOrderCount))

	return standardMiddleware.Then(mux)
}
