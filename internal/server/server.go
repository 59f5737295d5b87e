package server

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shecanfoundation/intern-backend/internal/avatar"
	"github.com/shecanfoundation/intern-backend/internal/config"
	"github.com/shecanfoundation/intern-backend/internal/handler"
	appmw "github.com/shecanfoundation/intern-backend/internal/middleware"
	"github.com/shecanfoundation/intern-backend/internal/repository"
	"github.com/shecanfoundation/intern-backend/internal/service"
	"gorm.io/gorm"
)

type Server struct {
	e        *echo.Echo
	userRepo repository.UserRepository
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func New(db *gorm.DB, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	userRepo := repository.NewUserRepository(db)

	// Firebase init is bounded by a 5s timeout; on failure the API keeps
	// serving public reads in a signed-out mode.
	authMw, err := appmw.NewAuthMiddleware(context.Background(), cfg.FirebaseProjectID, cfg.CredentialsFile)
	if err != nil {
		log.Printf("firebase auth unavailable, running signed-out: %v", err)
		authMw = nil
	}
	var authClient *auth.Client
	if authMw != nil {
		authClient = authMw.Client()
	}

	var avatars *avatar.Store
	if cfg.AvatarBucket != "" {
		avatars, err = avatar.NewStore(context.Background(), cfg.AvatarBucket, cfg.CredentialsFile)
		if err != nil {
			log.Printf("avatar storage unavailable, using generator URLs: %v", err)
		}
	}

	userSvc := service.NewUserService(userRepo, authClient, avatars)
	donationSvc := service.NewDonationService(userRepo)
	statsSvc := service.NewStatsService(userRepo, nil)

	userHandler := handler.NewUserHandler(userSvc)
	lbHandler := handler.NewLeaderboardHandler(statsSvc)
	donationHandler := handler.NewDonationHandler(donationSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	var requireAuth []echo.MiddlewareFunc
	if authMw != nil {
		requireAuth = append(requireAuth, authMw.RequireAuth)
	}

	api := e.Group("/api")
	api.POST("/auth/register", userHandler.Register)
	api.GET("/leaderboard", lbHandler.List)
	api.GET("/me", userHandler.Me, requireAuth...)
	api.GET("/me/stats", lbHandler.MyStats, requireAuth...)
	api.POST("/me/donations", donationHandler.Create, requireAuth...)
	api.PUT("/me/password", userHandler.ChangePassword, requireAuth...)

	return &Server{e: e, userRepo: userRepo}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) SetDB(db *gorm.DB) {
	if s.userRepo != nil {
		s.userRepo.SetDB(db)
	}
}
