package response

const (
	MsgInvalidRequest     = "Format permintaan tidak valid"
	MsgInvalidID          = "ID tidak valid"
	MsgUnauthorized       = "Tidak terautentikasi"
	MsgInvalidCredentials = "Username atau password salah"
	MsgSlugExists         = "Slug sudah digunakan"
	MsgTooManyRequests    = "Terlalu banyak permintaan, coba lagi nanti"
	MsgInternal           = "Terjadi kesalahan pada server"
	MsgFileRequired       = "File wajib diunggah"
	MsgFileTooLarge       = "Ukuran file terlalu besar"
	MsgInvalidFileType    = "Tipe file harus gambar atau video"
	MsgUnhealthy          = "Layanan tidak sehat"

	MsgBeritaNotFound  = "Berita tidak ditemukan"
	MsgGaleriNotFound  = "Galeri tidak ditemukan"
	MsgLaporanNotFound = "Laporan tidak ditemukan"

	MsgBeritaDeleted  = "Berita berhasil dihapus"
	MsgGaleriDeleted  = "Galeri berhasil dihapus"
	MsgLaporanDeleted = "Laporan berhasil dihapus"
	MsgLaporanCreated = "Laporan berhasil dikirim"
	MsgLoggedOut      = "Berhasil logout"
)

var (
	ErrInvalidRequestFormat = ErrorResponse(MsgInvalidRequest)
	ErrInvalidID            = ErrorResponse(MsgInvalidID)
	ErrAuthenticationFailed = ErrorResponse(MsgUnauthorized)
	ErrTooManyRequests      = ErrorResponse(MsgTooManyRequests)
	ErrInternal             = ErrorResponse(MsgInternal)
)

// FetchFailed is the body of a failed list request.
func FetchFailed(resource string) Response {
	return ErrorResponse("Failed to fetch " + resource)
}
