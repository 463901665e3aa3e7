package dto

import "dinas_portal/internal/domain/models"

// Dashboard is the admin overview: latest records plus counters per resource.
type Dashboard struct {
	Berita       []models.Berita     `json:"berita"`
	Galeri       []models.Galeri     `json:"galeri"`
	Laporan      []models.Laporan    `json:"laporan"`
	BeritaStats  models.BeritaStats  `json:"beritaStats"`
	GaleriStats  models.GaleriStats  `json:"galeriStats"`
	LaporanStats models.LaporanStats `json:"laporanStats"`
}

type UploadResult struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}
