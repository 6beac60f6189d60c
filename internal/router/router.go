package router

import (
	"time"

	"github.com/charityfund/charity/internal/auth"
	"github.com/charityfund/charity/internal/config"
	"github.com/charityfund/charity/internal/handlers"
	"github.com/charityfund/charity/internal/middleware"
	"github.com/charityfund/charity/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the API engine. Record routes require a bearer token when
// cfg.Auth.Secret is set and are open otherwise.
func NewRouter(s *store.Store, cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(logger.Named("http")))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(s, logger)

	api := r.Group("/api")
	api.GET("/health", h.HealthCheck)

	records := api.Group("")
	if cfg.Auth.Secret != "" {
		issuer, err := auth.NewIssuer(cfg.Auth)
		if err != nil {
			return nil, err
		}
		records.Use(middleware.AuthMiddleware(issuer))
	} else {
		logger.Warn("auth secret not set, record routes are open")
	}

	donors := records.Group("/donors")
	{
		donors.GET("", h.ListDonors)
		donors.POST("", h.CreateDonor)
		donors.GET("/:id", h.GetDonor)
		donors.PATCH("/:id", h.UpdateDonor)
		donors.DELETE("/:id", h.DeleteDonor)
	}

	donations := records.Group("/donations")
	{
		donations.GET("", h.ListDonations)
		donations.POST("", h.CreateDonation)
		donations.GET("/sum", h.SumDonations)
		donations.GET("/:id", h.GetDonation)
		donations.PATCH("/:id", h.UpdateDonation)
		donations.DELETE("/:id", h.DeleteDonation)
	}

	projects := records.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/progress", h.ProjectProgress)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
	}

	volunteers := records.Group("/volunteers")
	{
		volunteers.GET("", h.ListVolunteers)
		volunteers.POST("", h.CreateVolunteer)
		volunteers.GET("/:id", h.GetVolunteer)
		volunteers.PATCH("/:id", h.UpdateVolunteer)
		volunteers.DELETE("/:id", h.DeleteVolunteer)
	}

	links := records.Group("/volunteer-projects")
	{
		links.GET("", h.ListVolunteerProjects)
		links.POST("", h.CreateVolunteerProject)
		links.GET("/:id", h.GetVolunteerProject)
		links.PATCH("/:id", h.UpdateVolunteerProject)
		links.DELETE("/:id", h.DeleteVolunteerProject)
	}

	return r, nil
}
