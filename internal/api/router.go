package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/openfield/field-booking-backend/internal/auth"
	"github.com/openfield/field-booking-backend/internal/booking"
	bookingHttp "github.com/openfield/field-booking-backend/internal/booking/http"
	"github.com/openfield/field-booking-backend/internal/field"
	fieldHttp "github.com/openfield/field-booking-backend/internal/field/http"
	"github.com/openfield/field-booking-backend/internal/fieldphoto"
	fieldphotoHttp "github.com/openfield/field-booking-backend/internal/fieldphoto/http"
	"github.com/openfield/field-booking-backend/internal/pricing"
	pricingHttp "github.com/openfield/field-booking-backend/internal/pricing/http"
	"github.com/openfield/field-booking-backend/internal/user"
	userHttp "github.com/openfield/field-booking-backend/internal/user/http"
	"github.com/openfield/field-booking-backend/internal/venue"
	venueHttp "github.com/openfield/field-booking-backend/internal/venue/http"
)

// Config holds the services and settings needed to assemble the router.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	VenueService   venue.Service
	FieldService   field.Service
	PricingService pricing.Service
	BookingService booking.Service
	PhotoService   fieldphoto.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
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
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// sysAdminMiddleware: Further checks if the authenticated user has System Admin privileges.
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	venueHandler := venueHttp.NewHandler(cfg.VenueService, cfg.UserService)
	fieldHandler := fieldHttp.NewHandler(cfg.FieldService, cfg.UserService)
	pricingHandler := pricingHttp.NewHandler(cfg.PricingService, cfg.UserService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	photoHandler := fieldphotoHttp.NewHandler(cfg.PhotoService, cfg.UserService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware)
		fieldHttp.RegisterRoutes(v1, fieldHandler, authMiddleware)
		pricingHttp.RegisterRoutes(v1, pricingHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		fieldphotoHttp.RegisterRoutes(v1, photoHandler, authMiddleware)
	}

	return r
}
