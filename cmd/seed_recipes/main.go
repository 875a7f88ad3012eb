package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/menubook/backend/internal/model"
)

// seedRecipe mirrors the creation form's fields in the fixture file
type seedRecipe struct {
	Name        string `json:"name"`
	Healthy     bool   `json:"healthy"`
	PrepTime    int    `json:"prep_time"`
	CookTime    int    `json:"cook_time"`
	Servings    int    `json:"servings"`
	Ingredients string `json:"ingredients"`
	Directions  string `json:"directions"`
}

func main() {
	fixture := flag.String("fixture", "seed/recipes.json", "JSON file with recipes to seed")
	flag.Parse()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	content, err := os.ReadFile(*fixture)
	if err != nil {
		log.Fatalf("Failed to read fixture file: %v", err)
	}

	var seeds []seedRecipe
	if err := json.Unmarshal(content, &seeds); err != nil {
		log.Fatalf("Failed to parse fixture file: %v", err)
	}

	created := 0
	for _, seed := range seeds {
		var existing model.Recipe
		err := db.Where("name = ?", seed.Name).First(&existing).Error
		if err == nil {
			log.Printf("Skipping %q (already present)", seed.Name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check for existing recipe %q: %v", seed.Name, err)
		}

		recipe := model.Recipe{
			Name:        seed.Name,
			Healthy:     seed.Healthy,
			PrepTime:    seed.PrepTime,
			CookTime:    seed.CookTime,
			Servings:    seed.Servings,
			Ingredients: seed.Ingredients,
			Directions:  seed.Directions,
		}
		if err := db.Create(&recipe).Error; err != nil {
			log.Fatalf("Failed to create recipe %q: %v", seed.Name, err)
		}
		created++
	}

	log.Printf("Seeded %d recipes (%d already present)", created, len(seeds)-created)
}
