package main

import (
	"log"
	"os"
	"strings"

	"gamereviews/auth"
	"gamereviews/cache"
	"gamereviews/db"
	"gamereviews/handlers"
	"gamereviews/igdb"
	"gamereviews/middleware"
	"gamereviews/monitoring"
	"gamereviews/store"
	"gamereviews/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	db.InitDB()

	if err := cache.InitRedis(); err != nil {
		utils.Log.Warn("Redis unavailable, running without cache: ", err)
	}

	monitoring.InitMetrics()

	// Set to release mode in production
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	verifier := auth.NewTokenVerifier(
		os.Getenv("AUTH0_ISSUER"),
		os.Getenv("AUTH0_AUDIENCE"),
	)

	catalog := igdb.NewClient(
		os.Getenv("TWITCH_CLIENT_ID"),
		os.Getenv("TWITCH_CLIENT_SECRET"),
		os.Getenv("TWITCH_TOKEN_URL"),
		os.Getenv("IGDB_URL"),
	)

	h := handlers.New(store.NewGormStore(db.DB), catalog, os.Getenv("AUTH0_AUDIENCE"))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())
	r.Use(cors.New(corsConfig()))

	// Public routes
	r.GET("/ping", handlers.Ping)
	r.GET("/reviews", h.GetReviews)
	r.GET("/review/:id", h.GetReviewByID)
	r.GET("/recent-games", h.GetRecentGames)
	r.GET("/metrics", monitoring.MetricsHandler())

	protected := r.Group("/").Use(verifier.Middleware())
	{
		protected.POST("/reviews", h.CreateReview)
		protected.PUT("/review/:id", h.UpdateReview)
		protected.DELETE("/review/:id", h.DeleteReview)
		protected.GET("/me", h.GetMe)
		protected.PUT("/me/bio", h.UpdateBio)
		protected.GET("/me/reviews", h.GetMyReviews)
		protected.GET("/me/followings", h.GetFollowings)
		protected.GET("/me/followers", h.GetFollowers)
		protected.POST("/follow/:userId", h.FollowUser)
		protected.DELETE("/follow/:userId", h.UnfollowUser)
		protected.POST("/verify-user", h.VerifyUser)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.Log.Info("Starting server on port ", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowCredentials = true
	return cfg
}
