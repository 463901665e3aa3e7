package dto

import "dinas_portal/internal/domain/models"

type CreateGaleriRequest struct {
	Title       string            `json:"title" form:"title" validate:"required,max=255"`
	Description string            `json:"description" form:"description"`
	ImageURL    string            `json:"imageUrl" form:"imageUrl" validate:"required"`
	Type        models.GaleriType `json:"type" form:"type" validate:"required,oneof=photo video"`
	Published   bool              `json:"published" form:"published"`
}

type UpdateGaleriRequest struct {
	Title       models.Optional[string]            `json:"title"`
	Description models.Optional[string]            `json:"description"`
	ImageURL    models.Optional[string]            `json:"imageUrl"`
	Type        models.Optional[models.GaleriType] `json:"type"`
	Published   models.Optional[bool]              `json:"published"`
}

func (r UpdateGaleriRequest) Changes() models.GaleriUpdate {
	return models.GaleriUpdate{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Type:        r.Type,
		Published:   r.Published,
	}
}
