// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tomtom215/movieapi/internal/metrics"
	"github.com/tomtom215/movieapi/internal/models"
)

// namedEntity is a catalog row that only carries an id and a name.
type namedEntity interface {
	models.Director | models.Genre
}

// GetDirector returns the director with the given id, or an error wrapping ErrNotFound.
func (db *DB) GetDirector(ctx context.Context, id uint) (*models.Director, error) {
	return getNamed[models.Director](ctx, db.gorm, tableDirector, id)
}

// ListDirectors returns every director ordered by id.
func (db *DB) ListDirectors(ctx context.Context) ([]models.Director, error) {
	return listNamed[models.Director](ctx, db.gorm, tableDirector)
}

// CreateDirector inserts a director with the given name.
func (db *DB) CreateDirector(ctx context.Context, name string) (*models.Director, error) {
	d := &models.Director{Name: name}
	if err := createNamed(ctx, db.gorm, tableDirector, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDirector renames the director with the given id.
func (db *DB) UpdateDirector(ctx context.Context, id uint, name string) error {
	return updateNamed[models.Director](ctx, db.gorm, tableDirector, id, name)
}

// DeleteDirector removes the director with the given id. Movies that
// referenced it keep their row with director_id set to NULL.
func (db *DB) DeleteDirector(ctx context.Context, id uint) error {
	return deleteNamed[models.Director](ctx, db.gorm, tableDirector, id)
}

// GetGenre returns the genre with the given id, or an error wrapping ErrNotFound.
func (db *DB) GetGenre(ctx context.Context, id uint) (*models.Genre, error) {
	return getNamed[models.Genre](ctx, db.gorm, tableGenre, id)
}

// ListGenres returns every genre ordered by id.
func (db *DB) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return listNamed[models.Genre](ctx, db.gorm, tableGenre)
}

// CreateGenre inserts a genre with the given name.
func (db *DB) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	g := &models.Genre{Name: name}
	if err := createNamed(ctx, db.gorm, tableGenre, g); err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGenre renames the genre with the given id.
func (db *DB) UpdateGenre(ctx context.Context, id uint, name string) error {
	return updateNamed[models.Genre](ctx, db.gorm, tableGenre, id, name)
}

// DeleteGenre removes the genre with the given id. Movies that referenced
// it keep their row with genre_id set to NULL.
func (db *DB) DeleteGenre(ctx context.Context, id uint) error {
	return deleteNamed[models.Genre](ctx, db.gorm, tableGenre, id)
}

func getNamed[T namedEntity](ctx context.Context, gdb *gorm.DB, table string, id uint) (row *T, err error) {
	defer func(start time.Time) { observe("select", table, start, err) }(time.Now())

	var v T
	if err := gdb.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, fmt.Errorf("%s %d: %w", table, id, notFound(err))
	}
	return &v, nil
}

func listNamed[T namedEntity](ctx context.Context, gdb *gorm.DB, table string) (rows []T, err error) {
	defer func(start time.Time) { observe("select", table, start, err) }(time.Now())

	rows = make([]T, 0)
	if err := gdb.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return rows, nil
}

func createNamed[T namedEntity](ctx context.Context, gdb *gorm.DB, table string, row *T) (err error) {
	defer func(start time.Time) { observe("insert", table, start, err) }(time.Now())

	if err := gdb.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", table, err)
	}
	metrics.RecordCatalogMutation(table, "create")
	return nil
}

// updateNamed loads the row first so a missing id is reported as
// ErrNotFound without issuing a write.
func updateNamed[T namedEntity](ctx context.Context, gdb *gorm.DB, table string, id uint, name string) (err error) {
	defer func(start time.Time) { observe("update", table, start, err) }(time.Now())

	var v T
	tx := gdb.WithContext(ctx)
	if err := tx.First(&v, id).Error; err != nil {
		return fmt.Errorf("%s %d: %w", table, id, notFound(err))
	}
	if err := tx.Model(&v).Update("name", name).Error; err != nil {
		return fmt.Errorf("failed to update %s %d: %w", table, id, err)
	}
	metrics.RecordCatalogMutation(table, "update")
	return nil
}

func deleteNamed[T namedEntity](ctx context.Context, gdb *gorm.DB, table string, id uint) (err error) {
	defer func(start time.Time) { observe("delete", table, start, err) }(time.Now())

	var v T
	res := gdb.WithContext(ctx).Delete(&v, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s %d: %w", table, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}
	metrics.RecordCatalogMutation(table, "delete")
	return nil
}
