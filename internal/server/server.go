package server

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/config"
	"helpdesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	mongo    *mongo.Client
	services *Services
}

// New creates a new server instance: connects the store, wires the
// repositories/services/handlers and seeds reference data.
func New(cfg *config.Config) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	repos := InitRepositories(db)
	services := InitServices(cfg, repos)
	handlers := InitHandlers(services)

	if cfg.SeedEnabled {
		if err := PopulateInitialData(cfg, repos); err != nil {
			return nil, fmt.Errorf("failed to populate initial data: %w", err)
		}
	}

	router := setupRouter(cfg, handlers)

	return &Server{
		cfg:      cfg,
		router:   router,
		mongo:    mongoClient,
		services: services,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	fmt.Printf("Ticketing System API running on %s\n", s.cfg.Server.Address())
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	api := r.Group("/api")

	// Public auth routes
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/send-otp", h.Auth.SendOTP)
		authRoutes.POST("/signup", h.Auth.Signup)
		authRoutes.POST("/login", h.Auth.Login)
	}

	// Protected routes require a bearer token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))

	tickets := protected.Group("/tickets")
	{
		tickets.GET("", h.Ticket.List)
		tickets.POST("", h.Ticket.Create)
		tickets.GET("/stats", h.Ticket.Stats)
		tickets.PUT("/:id", h.Ticket.Update)
	}

	master := protected.Group("/master")
	{
		master.GET("/branches", h.Master.ListBranches)
		master.GET("/categories", h.Master.ListCategories)
		master.GET("/departments", h.Master.ListDepartments)
		master.GET("/users", h.Master.ListUsers)

		adminMaster := master.Group("")
		adminMaster.Use(middleware.RequireAdmin())
		adminMaster.POST("/branches", h.Master.CreateBranch)
		adminMaster.PUT("/branches/:id", h.Master.UpdateBranch)
		adminMaster.POST("/categories", h.Master.CreateCategory)
		adminMaster.POST("/departments", h.Master.CreateDepartment)
	}

	users := protected.Group("/users")
	{
		users.GET("/me", h.User.Me)

		adminUsers := users.Group("")
		adminUsers.Use(middleware.RequireAdmin())
		adminUsers.GET("", h.User.List)
		adminUsers.PUT("/:id", h.User.Update)
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/create-user", h.User.CreateUser)
	}

	return r
}
