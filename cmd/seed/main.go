package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"portfolio/internal/database"
	"portfolio/internal/domain/album"
	"portfolio/internal/domain/project"
)

// seed fills an empty database with a couple of demo records so the
// site has something to render on a fresh install. Tables that already
// hold rows are left alone.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "portfolio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	var count int64

	db.Model(&project.Project{}).Count(&count)
	if count == 0 {
		log.Println("Seeding dev projects...")
		projects := []project.Project{
			{
				Slug:               "portfolio-server",
				EnTitle:            "Portfolio Server",
				EnShortDescription: "Backend serving my portfolio content and file uploads",
				FrTitle:            "Serveur Portfolio",
				FrShortDescription: "Backend servant le contenu de mon portfolio et les fichiers",
				Techs:              "Go,Gin,GORM",
				Link:               "https://github.com/example/portfolio-server",
				Date:               "2025-06-01",
				Tags:               "backend,api",
				Priority:           1,
			},
			{
				Slug:               "photo-gallery",
				EnTitle:            "Photo Gallery",
				EnShortDescription: "Frontend gallery with albums and thumbnails",
				FrTitle:            "Galerie Photo",
				FrShortDescription: "Galerie avec albums et miniatures",
				Techs:              "TypeScript,React",
				Link:               "https://github.com/example/photo-gallery",
				Date:               "2025-03-15",
				Tags:               "frontend,photography",
				Priority:           2,
			},
		}
		for i := range projects {
			if err := db.Create(&projects[i]).Error; err != nil {
				log.Fatal("seed project failed: ", err)
			}
		}
	} else {
		log.Printf("dev_projects already has %d rows, skipping", count)
	}

	db.Model(&album.Album{}).Count(&count)
	if count == 0 {
		log.Println("Seeding albums...")
		camera := "Fujifilm X-T4"
		lens := "XF 23mm f/2"
		a := album.Album{
			Slug:             "urban-exploration",
			Title:            "Urban Exploration",
			Description:      "Walking the city at dusk",
			ShortTitle:       "Urban",
			Date:             "2025-05-20",
			Camera:           &camera,
			Lens:             &lens,
			PreviewImgOneURL: "/files/urban-exploration/preview.jpg",
			Featured:         true,
			Category:         "street",
		}
		if err := db.Create(&a).Error; err != nil {
			log.Fatal("seed album failed: ", err)
		}
		content := []album.Content{
			{Slug: a.Slug, ImgURL: "/files/urban-exploration/preview.jpg", Caption: "Dusk over the rooftops"},
		}
		for i := range content {
			if err := db.Create(&content[i]).Error; err != nil {
				log.Fatal("seed album content failed: ", err)
			}
		}
	} else {
		log.Printf("albums already has %d rows, skipping", count)
	}

	log.Println("Seed completed")
}
