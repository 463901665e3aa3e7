// Package docs holds the OpenAPI document served under /swag/swagger/.
// Regenerate with: swag init -g cmd/dinas_portal/main.go -o internal/transport/http/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/berita": {
			"get": {
				"tags": [
					"berita"
				],
				"summary": "Daftar berita",
				"produces": [
					"application/json"
				],
				"description": "Berita yang sudah terbit, terbaru di atas.",
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Halaman, mulai dari 1",
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Jumlah data per halaman",
						"type": "integer"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Kata kunci pencarian",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Gagal mengambil data",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/berita/{slug}": {
			"get": {
				"tags": [
					"berita"
				],
				"summary": "Detail berita",
				"produces": [
					"application/json"
				],
				"description": "Mengembalikan satu berita terbit dan menambah jumlah dilihat.",
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"description": "Slug berita",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Berita tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Kesalahan server",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/admin/berita": {
			"get": {
				"tags": [
					"admin-berita"
				],
				"summary": "Daftar semua berita",
				"produces": [
					"application/json"
				],
				"description": "Draf dan berita terbit beserta statistik.",
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Halaman, mulai dari 1",
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Jumlah data per halaman",
						"type": "integer"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Kata kunci pencarian",
						"type": "string"
					},
					{
						"name": "published",
						"in": "query",
						"required": false,
						"description": "Filter status terbit",
						"type": "boolean"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Gagal mengambil data",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"admin-berita"
				],
				"summary": "Buat berita",
				"produces": [
					"application/json"
				],
				"description": "Slug dibentuk dari judul. Konten HTML dibersihkan.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Data berita",
						"schema": {
							"$ref": "#/definitions/dto.CreateBeritaRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Data tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"409": {
						"description": "Slug sudah digunakan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Kesalahan server",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/admin/berita/{id}": {
			"get": {
				"tags": [
					"admin-berita"
				],
				"summary": "Berita berdasarkan ID",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "ID tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Berita tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"admin-berita"
				],
				"summary": "Ubah berita",
				"produces": [
					"application/json"
				],
				"description": "Perubahan sebagian. Field kosong diabaikan, slug tidak berubah.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Field yang diubah",
						"schema": {
							"$ref": "#/definitions/dto.UpdateBeritaRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Data tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Berita tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"admin-berita"
				],
				"summary": "Hapus berita",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "ID tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Berita tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/galeri": {
			"get": {
				"tags": [
					"galeri"
				],
				"summary": "Daftar galeri",
				"produces": [
					"application/json"
				],
				"description": "Foto dan video yang sudah terbit.",
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Halaman, mulai dari 1",
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Jumlah data per halaman",
						"type": "integer"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Kata kunci pencarian",
						"type": "string"
					},
					{
						"name": "type",
						"in": "query",
						"required": false,
						"description": "Jenis media",
						"type": "string",
						"enum": [
							"photo",
							"video"
						]
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Gagal mengambil data",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/admin/galeri": {
			"get": {
				"tags": [
					"admin-galeri"
				],
				"summary": "Daftar semua galeri",
				"produces": [
					"application/json"
				],
				"description": "Semua item galeri beserta statistik.",
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Halaman, mulai dari 1",
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Jumlah data per halaman",
						"type": "integer"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Kata kunci pencarian",
						"type": "string"
					},
					{
						"name": "published",
						"in": "query",
						"required": false,
						"description": "Filter status terbit",
						"type": "boolean"
					},
					{
						"name": "type",
						"in": "query",
						"required": false,
						"description": "Jenis media",
						"type": "string",
						"enum": [
							"photo",
							"video"
						]
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Gagal mengambil data",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"admin-galeri"
				],
				"summary": "Tambah item galeri",
				"produces": [
					"application/json"
				],
				"description": "Juga tersedia di POST /api/galeri dengan penjagaan yang sama.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Data galeri",
						"schema": {
							"$ref": "#/definitions/dto.CreateGaleriRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Data tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Kesalahan server",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/admin/galeri/{id}": {
			"get": {
				"tags": [
					"admin-galeri"
				],
				"summary": "Galeri berdasarkan ID",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "ID tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Galeri tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"admin-galeri"
				],
				"summary": "Ubah item galeri",
				"produces": [
					"application/json"
				],
				"description": "Perubahan sebagian. Jenis yang tidak dikenal ditolak.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Field yang diubah",
						"schema": {
							"$ref": "#/definitions/dto.UpdateGaleriRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Data tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Galeri tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"admin-galeri"
				],
				"summary": "Hapus item galeri",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "ID tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Galeri tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/laporan": {
			"post": {
				"tags": [
					"laporan"
				],
				"summary": "Kirim laporan",
				"produces": [
					"application/json"
				],
				"description": "Laporan masyarakat, selalu berstatus pending. Dibatasi per alamat IP.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Isi laporan",
						"schema": {
							"$ref": "#/definitions/dto.CreateLaporanRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Data tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"429": {
						"description": "Terlalu banyak permintaan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Kesalahan server",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"get": {
				"tags": [
					"laporan"
				],
				"summary": "Daftar laporan",
				"produces": [
					"application/json"
				],
				"description": "Juga tersedia di /api/admin/laporan.",
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Halaman, mulai dari 1",
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Jumlah data per halaman",
						"type": "integer"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Kata kunci pencarian",
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "Filter status",
						"type": "string",
						"enum": [
							"pending",
							"in_progress",
							"resolved",
							"closed"
						]
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Gagal mengambil data",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/laporan/{id}": {
			"get": {
				"tags": [
					"laporan"
				],
				"summary": "Laporan berdasarkan ID",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "ID tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Laporan tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"laporan"
				],
				"summary": "Ubah status laporan",
				"produces": [
					"application/json"
				],
				"description": "Hanya status yang dapat diubah.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Status baru",
						"schema": {
							"$ref": "#/definitions/dto.UpdateLaporanRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Status tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Laporan tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"laporan"
				],
				"summary": "Hapus laporan",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID data",
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "ID tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Laporan tidak ditemukan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Login admin",
				"produces": [
					"application/json"
				],
				"description": "Menerima JSON atau form. Token juga disimpan di sesi dan cookie admin_token. Form diarahkan ke /admin.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Kredensial",
						"schema": {
							"$ref": "#/definitions/request.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Format permintaan salah",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Username atau password salah",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"429": {
						"description": "Terlalu banyak permintaan",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Logout",
				"produces": [
					"application/json"
				],
				"description": "Mencabut token yang dikirim, lalu menghapus sesi dan cookie.",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Kesalahan server",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/auth/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Admin saat ini",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/admin/dashboard": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Ringkasan dashboard",
				"produces": [
					"application/json"
				],
				"description": "Statistik dan data terbaru dari berita, galeri dan laporan.",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"500": {
						"description": "Gagal mengambil data",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/admin/upload": {
			"post": {
				"tags": [
					"admin"
				],
				"summary": "Unggah media",
				"produces": [
					"application/json"
				],
				"description": "Gambar atau video. Jenis file dibaca dari isinya.",
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"name": "file",
						"in": "formData",
						"required": true,
						"description": "Berkas gambar atau video",
						"type": "file"
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Berkas tidak valid",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"401": {
						"description": "Belum login",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"413": {
						"description": "Berkas terlalu besar",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/health": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Status layanan",
				"produces": [
					"application/json"
				],
				"description": "Memeriksa database dan redis.",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"503": {
						"description": "Ada layanan yang tidak tersedia",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"response.Response": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				},
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"pagination": {
					"$ref": "#/definitions/pagination.Meta"
				},
				"stats": {
					"type": "object"
				}
			}
		},
		"pagination.Meta": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer"
				},
				"limit": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				},
				"hasNext": {
					"type": "boolean"
				},
				"hasPrev": {
					"type": "boolean"
				}
			}
		},
		"request.LoginRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"dto.CreateBeritaRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 255
				},
				"summary": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"imageUrl": {
					"type": "string"
				},
				"published": {
					"type": "boolean"
				}
			},
			"required": [
				"title",
				"content"
			]
		},
		"dto.UpdateBeritaRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"summary": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"imageUrl": {
					"type": "string"
				},
				"published": {
					"type": "boolean"
				}
			}
		},
		"dto.CreateGaleriRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 255
				},
				"description": {
					"type": "string"
				},
				"imageUrl": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"photo",
						"video"
					]
				},
				"published": {
					"type": "boolean"
				}
			},
			"required": [
				"title",
				"imageUrl",
				"type"
			]
		},
		"dto.UpdateGaleriRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"imageUrl": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"photo",
						"video"
					]
				},
				"published": {
					"type": "boolean"
				}
			}
		},
		"dto.CreateLaporanRequest": {
			"type": "object",
			"properties": {
				"nama": {
					"type": "string",
					"maxLength": 255
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string",
					"maxLength": 32
				},
				"address": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			},
			"required": [
				"nama",
				"email",
				"phone",
				"message"
			]
		},
		"dto.UpdateLaporanRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"pending",
						"in_progress",
						"resolved",
						"closed"
					]
				}
			},
			"required": [
				"status"
			]
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dinas Portal API",
	Description:      "Portal berita, galeri dan laporan masyarakat.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
