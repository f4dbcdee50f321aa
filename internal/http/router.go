package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/JaunMarin423/CrudUsers/internal/config"
	"github.com/JaunMarin423/CrudUsers/internal/http/handlers"
	"github.com/JaunMarin423/CrudUsers/internal/http/middleware"
	"github.com/JaunMarin423/CrudUsers/internal/models"
	"github.com/JaunMarin423/CrudUsers/internal/services"
)

type Dependencies struct {
	Config      *config.Config
	Logger      *slog.Logger
	Tokens      *services.TokenService
	UserStore   services.UserStore
	AuthService *services.AuthService
	UserService *services.UserService
	RateLimiter *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.Errors(deps.Logger, deps.Config.IsProduction()))
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   deps.Config.AllowedMethods,
		AllowCredentials: deps.Config.AllowCredentials,
	}))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	userHandler := handlers.NewUserHandler(deps.UserService)

	protect := middleware.Protect(deps.Tokens, deps.UserStore)
	adminOnly := middleware.RestrictTo(models.RoleAdmin)
	ownerOrAdmin := middleware.OwnerOrAdmin(deps.UserStore, "id")

	api := router.Group(deps.Config.APIPrefix)
	api.Use(deps.RateLimiter.Middleware())

	api.GET("/health", handlers.Health(deps.Config.Env))

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", protect, authHandler.Logout)
		auth.GET("/me", protect, authHandler.Me)
	}

	users := api.Group("/users", protect)
	{
		users.GET("", adminOnly, userHandler.List)
		users.POST("", adminOnly, userHandler.Create)
		users.GET("/me", authHandler.Me)
		users.GET("/:id", ownerOrAdmin, userHandler.Get)
		users.PUT("/:id", ownerOrAdmin, userHandler.Update)
		users.DELETE("/:id", adminOnly, userHandler.Delete)
	}

	router.NoRoute(middleware.NotFoundRoute())

	return router
}
