package routes

import (
	"fairway/accounts"
	"fairway/admin"
	"fairway/auth"
	"fairway/live"
	"fairway/middleware"
	"fairway/prefs"
	"fairway/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddAccountRoutes(router *httprouter.Router) {
	router.GET("/api/accounts", middleware.Authenticate(accounts.GetAccounts))
	router.PUT("/api/accounts/:accountId", ratelim.RateLimit(middleware.Authenticate(accounts.PutAccount)))
	router.DELETE("/api/accounts/:accountId", middleware.Authenticate(accounts.DeleteAccount))
	router.POST("/api/accounts/bulk-delete", ratelim.RateLimit(middleware.Authenticate(accounts.BulkDelete)))
}

func AddPreferenceRoutes(router *httprouter.Router) {
	router.GET("/api/preferences", middleware.Authenticate(prefs.GetPreferences))
	router.PUT("/api/preferences/:field", ratelim.RateLimit(middleware.Authenticate(prefs.UpdatePreference)))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/clients", middleware.RequireAdmin(admin.GetAllClients))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/config", live.ConfigSocket(hub))
	router.GET("/ws/dashboard", live.DashboardSocket())
	router.GET("/api/config/updates", middleware.Authenticate(live.ConfigUpdates))
}
