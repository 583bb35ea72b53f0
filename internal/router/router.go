package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/repodosen/repositori-backend/internal/config"
	"github.com/repodosen/repositori-backend/internal/handler"
	"github.com/repodosen/repositori-backend/internal/middleware"
	"github.com/repodosen/repositori-backend/internal/response"
	"github.com/repodosen/repositori-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Dosen   *handler.DosenHandler
	Dokumen *handler.DokumenHandler
	Prodi   *handler.ProdiHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Routes live at the root path level; that is the contract existing clients
// were written against.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	rdb *redis.Client,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Auth (public, rate limited) ───────────────────────────────────
	// The login check carries no secret, so the limiter is the only brake
	// on guessing name+nip pairs.
	loginLimiter := middleware.NewRateLimiter(rdb, "login", cfg.LoginRateLimit, cfg.LoginRateWindow)
	router.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)
	router.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)

	// ─── Protected resources ───────────────────────────────────────────
	authed := router.Group("/")
	authed.Use(middleware.RequireJWT(authService))
	{
		authed.GET("/dosen", handlers.Dosen.GetAll)
		authed.GET("/dosen/:nip", handlers.Dosen.Get)
		authed.POST("/dosen", handlers.Dosen.Create)
		authed.PUT("/dosen/:nip", handlers.Dosen.Update)
		authed.DELETE("/dosen/:nip", handlers.Dosen.Delete)

		authed.GET("/document", handlers.Dokumen.GetAll)
		authed.GET("/document/:id", handlers.Dokumen.Get)
		authed.POST("/document", handlers.Dokumen.Create)
		authed.PUT("/document/:id", handlers.Dokumen.Update)
		authed.DELETE("/document/:id", handlers.Dokumen.Delete)

		authed.GET("/prodi", handlers.Prodi.GetAll)
		authed.GET("/prodi/:id", handlers.Prodi.Get)
		authed.POST("/prodi", handlers.Prodi.Create)
		authed.PUT("/prodi/:id", handlers.Prodi.Update)
		authed.DELETE("/prodi/:id", handlers.Prodi.Delete)
	}

	return router
}
