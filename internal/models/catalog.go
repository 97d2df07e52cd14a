// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package models

// Movie is a catalog entry. GenreID and DirectorID are null when unset and
// must reference existing rows when set.
type Movie struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255" json:"title"`
	Description string  `gorm:"size:255" json:"description"`
	Trailer     string  `gorm:"size:255" json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	GenreID     *uint   `gorm:"index" json:"genre_id"`
	DirectorID  *uint   `gorm:"index" json:"director_id"`

	Genre    *Genre    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Director *Director `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}

// TableName keeps the singular table name used by existing databases.
func (Movie) TableName() string {
	return "movie"
}

// Director is a person credited on zero or more movies.
type Director struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255" json:"name"`
}

func (Director) TableName() string {
	return "director"
}

// Genre classifies zero or more movies.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255" json:"name"`
}

func (Genre) TableName() string {
	return "genre"
}

// NameInput is the request body for creating or renaming a director or genre.
// Unknown fields are rejected by the decoder; name is mandatory.
type NameInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// MovieFilter narrows the movie list. Nil fields do not filter; set fields
// must match exactly and are combined with AND.
type MovieFilter struct {
	DirectorID *uint
	GenreID    *uint
}

// IsEmpty reports whether the filter matches every movie.
func (f MovieFilter) IsEmpty() bool {
	return f.DirectorID == nil && f.GenreID == nil
}
