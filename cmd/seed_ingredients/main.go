package main

import (
	"encoding/csv"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/foodgram/backend/config"
	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/models"
)

// Loads the ingredient catalog from a "name,unit" CSV. Rows already in
// the catalog are skipped, so the import is safe to re-run.
func main() {
	path := flag.String("file", "data/ingredients.csv", "path to the ingredients CSV")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("failed to open CSV")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	var imported, skipped int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read CSV")
		}
		if len(row) < 2 {
			continue
		}

		ingredient := models.Ingredient{Name: row[0], Unit: row[1]}
		res := db.Where("name = ? AND unit = ?", ingredient.Name, ingredient.Unit).
			FirstOrCreate(&ingredient)
		if res.Error != nil {
			log.Fatal().Err(res.Error).Str("name", ingredient.Name).Msg("failed to import ingredient")
		}
		if res.RowsAffected > 0 {
			imported++
		} else {
			skipped++
		}
	}

	log.Info().Int("imported", imported).Int("skipped", skipped).Msg("ingredient catalog loaded")
}
