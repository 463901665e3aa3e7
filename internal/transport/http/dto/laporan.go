package dto

import "dinas_portal/internal/domain/models"

// CreateLaporanRequest is the public complaint form. A status sent by the
// client is never read.
type CreateLaporanRequest struct {
	Nama    string `json:"nama" form:"nama" validate:"required,max=255"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"required,max=32"`
	Address string `json:"address" form:"address"`
	Message string `json:"message" form:"message" validate:"required"`
}

type UpdateLaporanRequest struct {
	Status models.LaporanStatus `json:"status" form:"status" validate:"required"`
}
