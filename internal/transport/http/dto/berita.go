package dto

import "dinas_portal/internal/domain/models"

type CreateBeritaRequest struct {
	Title     string `json:"title" form:"title" validate:"required,max=255"`
	Summary   string `json:"summary" form:"summary"`
	Content   string `json:"content" form:"content" validate:"required"`
	ImageURL  string `json:"imageUrl" form:"imageUrl"`
	Published bool   `json:"published" form:"published"`
}

// UpdateBeritaRequest is a partial update. Fields left out of the payload stay unchanged.
type UpdateBeritaRequest struct {
	Title     models.Optional[string] `json:"title"`
	Summary   models.Optional[string] `json:"summary"`
	Content   models.Optional[string] `json:"content"`
	ImageURL  models.Optional[string] `json:"imageUrl"`
	Published models.Optional[bool]   `json:"published"`
}

func (r UpdateBeritaRequest) Changes() models.BeritaUpdate {
	return models.BeritaUpdate{
		Title:     r.Title,
		Summary:   r.Summary,
		Content:   r.Content,
		ImageURL:  r.ImageURL,
		Published: r.Published,
	}
}
