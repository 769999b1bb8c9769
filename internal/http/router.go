package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/josptrra/be-rasadhana/domain"
	"github.com/josptrra/be-rasadhana/internal/http/handlers"
	"github.com/josptrra/be-rasadhana/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.PhotoHandlers, rh *handlers.RecipeHandlers, tokenSvc domain.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "Welcome to the Rasadhana API"})
	})

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/login", ah.Login)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.PATCH("/update/:userId", ah.UpdateName)
	auth.PATCH("/update-profile-photo", ah.UpdateProfilePhoto)
	auth.DELETE("/delete-profile-photo", ah.DeleteProfilePhoto)

	authed := r.Group("/").Use(middleware.AuthMiddleware(tokenSvc))
	authed.GET("/auth/me", ah.Me)

	photos := r.Group("/photos")
	photos.POST("/upload-photo", ph.Upload)
	photos.GET("/latest/:userId", ph.Latest)
	photos.GET("/:userId", ph.List)

	recipes := r.Group("/recipes")
	recipes.POST("", rh.Create)
	recipes.GET("", rh.List)
	recipes.PATCH("/:id", rh.Update)
	recipes.DELETE("/:id", rh.Delete)

	return r
}
