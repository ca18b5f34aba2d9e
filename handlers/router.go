package handlers

import (
	"github.com/gin-gonic/gin"

	"fave/auth"
	"fave/market"
	"fave/middleware"
	"fave/models"
	"fave/profile"
	"fave/store"
)

// Deps carries everything the route table needs.
type Deps struct {
	Store    store.Store
	Ledger   *market.Ledger
	Images   *profile.Images
	Sessions *auth.Service
}

// NewRouter builds the full route table. Dashboard and mutation routes sit
// behind the session middleware; listing creation is artist-only and
// purchasing is fan-only.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.GET("/health", HealthCheck)

	r.POST("/auth/signup", Signup(deps.Sessions))
	r.POST("/auth/login", Login(deps.Sessions))
	r.GET("/auth/session", middleware.SessionRequired(deps.Sessions), GetSession())
	r.DELETE("/auth/session", Logout(deps.Sessions))

	r.POST("/api/contact", SubmitContact(deps.Store))

	api := r.Group("/api", middleware.SessionRequired(deps.Sessions))
	{
		api.GET("/projects", ListProjects(deps.Ledger))
		api.GET("/projects/:id", GetProject(deps.Ledger))

		api.POST("/projects", middleware.RoleRequired(models.RoleArtist), CreateProject(deps.Ledger))
		api.GET("/projects/mine", middleware.RoleRequired(models.RoleArtist), MyProjects(deps.Ledger))

		api.POST("/projects/:id/purchase", middleware.RoleRequired(models.RoleFan), PurchaseToken(deps.Ledger))
		api.GET("/tokens", middleware.RoleRequired(models.RoleFan), ListTokens(deps.Ledger))

		api.PUT("/profile/image", UploadProfileImage(deps.Images))
		api.GET("/profile/image", GetProfileImage(deps.Images))

		api.GET("/dashboard/artist", middleware.RoleRequired(models.RoleArtist), ArtistDashboard(deps.Ledger, deps.Images))
		api.GET("/dashboard/fan", middleware.RoleRequired(models.RoleFan), FanDashboard(deps.Ledger, deps.Images))
	}

	return r
}
