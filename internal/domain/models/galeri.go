package models

import (
	"time"

	"github.com/google/uuid"
)

type GaleriType string

const (
	GaleriTypePhoto GaleriType = "photo"
	GaleriTypeVideo GaleriType = "video"
)

// Valid reports whether t is one of the known gallery types.
func (t GaleriType) Valid() bool {
	return t == GaleriTypePhoto || t == GaleriTypeVideo
}

// Galeri is a single photo or video entry of the gallery.
type Galeri struct {
	ID          uuid.UUID  `db:"id" json:"id" bson:"_id"`
	Title       string     `db:"title" json:"title" bson:"title"`
	Description string     `db:"description" json:"description" bson:"description"`
	ImageURL    string     `db:"image_url" json:"imageUrl" bson:"imageUrl"`
	Type        GaleriType `db:"type" json:"type" bson:"type"`
	Published   bool       `db:"published" json:"published" bson:"published"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt" bson:"updatedAt"`
}

type GaleriUpdate struct {
	Title       Optional[string]
	Description Optional[string]
	ImageURL    Optional[string]
	Type        Optional[GaleriType]
	Published   Optional[bool]
}

type GaleriStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
	Photo     int64 `json:"photo"`
	Video     int64 `json:"video"`
}

func (s *GaleriStats) Add(published bool, typ GaleriType, n int64) {
	s.Total += n
	if published {
		s.Published += n
	} else {
		s.Draft += n
	}

	switch typ {
	case GaleriTypePhoto:
		s.Photo += n
	case GaleriTypeVideo:
		s.Video += n
	}
}
