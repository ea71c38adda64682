package routes

import (
	"net/http"

	"roamio/auth"
	"roamio/booking"
	"roamio/itinerary"
	"roamio/middleware"
	"roamio/profile"
	"roamio/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddProfileRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PATCH("/api/profile", rl.Limit(middleware.Authenticate(profile.EditProfile)))
	router.POST("/api/profile/avatar", rl.Limit(middleware.Authenticate(profile.EditAvatar)))
}

func AddItineraryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/itineraries", rl.Limit(middleware.Authenticate(itinerary.CreateItinerary)))
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.GET("/api/itineraries/recent", middleware.Authenticate(itinerary.GetRecentItineraries))
	router.GET("/api/itineraries/all/:id", middleware.Authenticate(itinerary.GetItinerary))
	router.PUT("/api/itineraries/:id", rl.Limit(middleware.Authenticate(itinerary.UpdateItinerary)))
	router.POST("/api/itineraries/:id/days", rl.Limit(middleware.Authenticate(itinerary.AddDay)))
	router.DELETE("/api/itineraries/:id", rl.Limit(middleware.Authenticate(itinerary.DeleteItinerary)))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(middleware.Authenticate(booking.CreateBooking)))
	router.GET("/api/bookings", middleware.Authenticate(booking.GetBookings))
	router.GET("/api/bookings/recent", middleware.Authenticate(booking.GetRecentBookings))
	router.GET("/api/bookings/stats", middleware.Authenticate(booking.GetBookingStats))
	router.GET("/api/bookings/all/:id", middleware.Authenticate(booking.GetBooking))
	router.GET("/api/bookings/all/:id/voucher", middleware.Authenticate(booking.PrintVoucher))
	router.PUT("/api/bookings/:id", rl.Limit(middleware.Authenticate(booking.UpdateBooking)))
	router.PATCH("/api/bookings/:id/status", rl.Limit(middleware.Authenticate(booking.UpdateBookingStatus)))
	router.DELETE("/api/bookings/:id", rl.Limit(middleware.Authenticate(booking.DeleteBooking)))
}
