package models

import (
	"time"

	"github.com/google/uuid"
)

// Berita is a news article.
type Berita struct {
	ID        uuid.UUID `db:"id" json:"id" bson:"_id"`
	Title     string    `db:"title" json:"title" bson:"title"`
	Slug      string    `db:"slug" json:"slug" bson:"slug"`
	Summary   string    `db:"summary" json:"summary" bson:"summary"`
	Content   string    `db:"content" json:"content" bson:"content"`
	ImageURL  string    `db:"image_url" json:"imageUrl" bson:"imageUrl"`
	Published bool      `db:"published" json:"published" bson:"published"`
	Views     int64     `db:"views" json:"views" bson:"views"`
	CreatedAt time.Time `db:"created_at" json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt" bson:"updatedAt"`
}

// BeritaUpdate carries a partial update. Only fields that are present take part in the merge.
type BeritaUpdate struct {
	Title     Optional[string]
	Summary   Optional[string]
	Content   Optional[string]
	ImageURL  Optional[string]
	Published Optional[bool]
}

type BeritaStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
}

// Add folds one grouped count row into the totals.
func (s *BeritaStats) Add(published bool, n int64) {
	s.Total += n
	if published {
		s.Published += n
	} else {
		s.Draft += n
	}
}
