package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/domain/album"
	"portfolio/internal/domain/asset"
	"portfolio/internal/domain/project"
	"portfolio/internal/middleware"
)

func main() {
	// .env is optional; real deployments pass the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store, err := asset.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}
	deriver := asset.NewDeriver(cfg.ThumbWidth, cfg.ThumbHeight)

	assetService := asset.NewService(asset.NewRepository(db), store, deriver, cfg.MaxUploadBytes)
	assetHandler := asset.NewHandler(assetService)

	albumService := album.NewService(album.NewRepository(db), assetService)
	albumHandler := album.NewHandler(albumService)

	projectHandler := project.NewHandler(project.NewRepository(db))

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-API-Key"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := r.Group("/")
	{
		// public reads
		project.RegisterPublicRoutes(root, projectHandler)
		album.RegisterPublicRoutes(root, albumHandler)
		asset.RegisterFileRoutes(root, assetHandler)

		// mutations require the shared API key
		protected := root.Group("/")
		protected.Use(middleware.APIKeyAuth(cfg.APIKey))
		{
			project.RegisterProtectedRoutes(protected, projectHandler)
			album.RegisterProtectedRoutes(protected, albumHandler)
			asset.RegisterProtectedRoutes(protected, assetHandler)
		}
	}

	log.Printf("server_start addr=%s env=%s upload_dir=%s", cfg.Addr(), cfg.AppEnv, cfg.UploadDir)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
