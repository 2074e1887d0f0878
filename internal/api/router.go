package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/glisicmilica/barberline-backend/internal/auth"
	"github.com/glisicmilica/barberline-backend/internal/catalog"
	catalogHttp "github.com/glisicmilica/barberline-backend/internal/catalog/http"
	"github.com/glisicmilica/barberline-backend/internal/reservation"
	reservationHttp "github.com/glisicmilica/barberline-backend/internal/reservation/http"
	"github.com/glisicmilica/barberline-backend/internal/schedule"
	scheduleHttp "github.com/glisicmilica/barberline-backend/internal/schedule/http"
	"github.com/glisicmilica/barberline-backend/internal/user"
	userHttp "github.com/glisicmilica/barberline-backend/internal/user/http"
)

// Config carries the environment-dependent router settings.
type Config struct {
	// IsProduction switches Gin into release mode and narrows CORS to
	// ProdOrigins.
	IsProduction bool

	// ProdOrigins lists the allowed origins in production.
	ProdOrigins []string
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(
	cfg Config,
	userService user.Service,
	catalogService catalog.Catalog,
	scheduleService schedule.Service,
	reservationService reservation.Service,
	jwtManager *auth.JWTManager,
) *gin.Engine {

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(jwtManager)
	// adminMiddleware: Further checks if the authenticated user is the shop admin.
	adminMiddleware := RequireAdmin(userService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(userService, jwtManager)
	catalogHandler := catalogHttp.NewHandler(catalogService)
	scheduleHandler := scheduleHttp.NewHandler(scheduleService)
	reservationHandler := reservationHttp.NewHandler(reservationService, userService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler, authMiddleware, adminMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, authMiddleware, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, adminMiddleware)
	}

	return r
}
