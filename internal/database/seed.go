// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package database

import (
	"context"
	"fmt"
	"net/url"

	"gorm.io/gorm"

	"github.com/tomtom215/movieapi/internal/logging"
	"github.com/tomtom215/movieapi/internal/models"
)

type sampleMovie struct {
	title    string
	year     int
	rating   float64
	director string
	genre    string
	summary  string
}

var (
	sampleDirectors = []string{
		"Christopher Nolan",
		"Denis Villeneuve",
		"Greta Gerwig",
		"Bong Joon-ho",
		"Michael Mann",
	}

	sampleGenres = []string{
		"Drama",
		"Science Fiction",
		"Thriller",
		"Comedy",
		"Crime",
	}

	sampleMovies = []sampleMovie{
		{"Inception", 2010, 8.8, "Christopher Nolan", "Science Fiction", "A thief who steals secrets through dreams takes on one last job."},
		{"Interstellar", 2014, 8.7, "Christopher Nolan", "Science Fiction", "Explorers travel through a wormhole to save humanity."},
		{"Memento", 2000, 8.4, "Christopher Nolan", "Thriller", "A man with short-term memory loss hunts his wife's killer."},
		{"Arrival", 2016, 7.9, "Denis Villeneuve", "Science Fiction", "A linguist is recruited to talk with visitors from space."},
		{"Prisoners", 2013, 8.1, "Denis Villeneuve", "Thriller", "A father takes matters into his own hands after his daughter vanishes."},
		{"Lady Bird", 2017, 7.4, "Greta Gerwig", "Comedy", "A teenager navigates her last year of high school in Sacramento."},
		{"Little Women", 2019, 7.8, "Greta Gerwig", "Drama", "Four sisters come of age in the aftermath of the Civil War."},
		{"Parasite", 2019, 8.5, "Bong Joon-ho", "Thriller", "A poor family schemes its way into a wealthy household."},
		{"Memories of Murder", 2003, 8.1, "Bong Joon-ho", "Crime", "Two detectives pursue a serial killer in rural Korea."},
		{"Heat", 1995, 8.3, "Michael Mann", "Crime", "A detective and a master thief circle each other across Los Angeles."},
		{"Collateral", 2004, 7.5, "Michael Mann", "Crime", "A cab driver is forced to chauffeur a hitman for one night."},
	}
)

// trailerURL returns a search link for a film's trailer.
func trailerURL(title string, year int) string {
	return "https://www.youtube.com/results?search_query=" +
		url.QueryEscape(fmt.Sprintf("%s %d trailer", title, year))
}

// SeedSampleData fills an empty catalog with a fixed set of directors,
// genres and movies. It does nothing when at least one movie exists, so it
// is safe to run on every startup.
func (db *DB) SeedSampleData(ctx context.Context) error {
	return db.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Movie{}).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count movies: %w", err)
		}
		if existing > 0 {
			logging.Info().Int64("movies", existing).Msg("Catalog already populated, skipping sample data")
			return nil
		}

		logging.Info().Msg("Seeding database with sample catalog...")

		directorIDs := make(map[string]uint, len(sampleDirectors))
		for _, name := range sampleDirectors {
			d := models.Director{Name: name}
			if err := tx.Create(&d).Error; err != nil {
				return fmt.Errorf("failed to seed director %q: %w", name, err)
			}
			directorIDs[name] = d.ID
		}

		genreIDs := make(map[string]uint, len(sampleGenres))
		for _, name := range sampleGenres {
			g := models.Genre{Name: name}
			if err := tx.Create(&g).Error; err != nil {
				return fmt.Errorf("failed to seed genre %q: %w", name, err)
			}
			genreIDs[name] = g.ID
		}

		movies := make([]models.Movie, 0, len(sampleMovies))
		for _, s := range sampleMovies {
			directorID := directorIDs[s.director]
			genreID := genreIDs[s.genre]
			movies = append(movies, models.Movie{
				Title:       s.title,
				Description: s.summary,
				Trailer:     trailerURL(s.title, s.year),
				Year:        s.year,
				Rating:      s.rating,
				DirectorID:  &directorID,
				GenreID:     &genreID,
			})
		}
		if err := tx.Create(&movies).Error; err != nil {
			return fmt.Errorf("failed to seed movies: %w", err)
		}

		logging.Info().
			Int("directors", len(sampleDirectors)).
			Int("genres", len(sampleGenres)).
			Int("movies", len(movies)).
			Msg("Sample catalog seeded")
		return nil
	})
}
