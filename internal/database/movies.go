// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/movieapi/internal/models"
)

// ListMovies returns the movies matching every set field of filter, ordered
// by id. The result is never nil; no match yields an empty slice.
func (db *DB) ListMovies(ctx context.Context, filter models.MovieFilter) (movies []models.Movie, err error) {
	defer func(start time.Time) { observe("select", tableMovie, start, err) }(time.Now())

	query := db.gorm.WithContext(ctx).Order("id")
	if filter.DirectorID != nil {
		query = query.Where("director_id = ?", *filter.DirectorID)
	}
	if filter.GenreID != nil {
		query = query.Where("genre_id = ?", *filter.GenreID)
	}

	movies = make([]models.Movie, 0)
	if err := query.Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// GetMovie returns the movie with the given id, or an error wrapping
// ErrNotFound.
func (db *DB) GetMovie(ctx context.Context, id uint) (movie *models.Movie, err error) {
	defer func(start time.Time) { observe("select", tableMovie, start, err) }(time.Now())

	var m models.Movie
	if err := db.gorm.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("movie %d: %w", id, notFound(err))
	}
	return &m, nil
}

// CreateMovie inserts a movie and sets its generated id. Foreign keys are
// checked by the storage engine.
func (db *DB) CreateMovie(ctx context.Context, movie *models.Movie) (err error) {
	defer func(start time.Time) { observe("insert", tableMovie, start, err) }(time.Now())

	if movie == nil {
		return fmt.Errorf("movie cannot be nil")
	}
	if err := db.gorm.WithContext(ctx).Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}
