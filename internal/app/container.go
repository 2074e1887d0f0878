package app

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/glisicmilica/barberline-backend/internal/api"
	"github.com/glisicmilica/barberline-backend/internal/auth"
	"github.com/glisicmilica/barberline-backend/internal/catalog"
	"github.com/glisicmilica/barberline-backend/internal/reservation"
	"github.com/glisicmilica/barberline-backend/internal/schedule"
	"github.com/glisicmilica/barberline-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Catalog Module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogService := catalog.NewCatalog(catalogRepo)

	// Schedule Module
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, scheduleService, catalogService, userService)

	// API Router Config
	routerConfig := api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  splitOrigins(cfg.ProdOrigins),
	}

	// Router
	router := api.NewRouter(routerConfig, userService, catalogService, scheduleService, reservationService, jwtManager)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}

// splitOrigins turns the comma-separated PROD_ORIGINS value into a list.
func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
