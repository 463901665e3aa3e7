package models

import (
	"time"

	"github.com/google/uuid"
)

type LaporanStatus string

const (
	LaporanStatusPending    LaporanStatus = "pending"
	LaporanStatusInProgress LaporanStatus = "in_progress"
	LaporanStatusResolved   LaporanStatus = "resolved"
	LaporanStatusClosed     LaporanStatus = "closed"
)

// LaporanStatuses lists every status a report can be in. Any status may be set from any other.
var LaporanStatuses = []LaporanStatus{
	LaporanStatusPending,
	LaporanStatusInProgress,
	LaporanStatusResolved,
	LaporanStatusClosed,
}

func (s LaporanStatus) Valid() bool {
	for _, st := range LaporanStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Laporan is a complaint or report submitted by a citizen.
type Laporan struct {
	ID        uuid.UUID     `db:"id" json:"id" bson:"_id"`
	Nama      string        `db:"nama" json:"nama" bson:"nama"`
	Email     string        `db:"email" json:"email" bson:"email"`
	Phone     string        `db:"phone" json:"phone" bson:"phone"`
	Address   string        `db:"address" json:"address" bson:"address"`
	Message   string        `db:"message" json:"message" bson:"message"`
	Status    LaporanStatus `db:"status" json:"status" bson:"status"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt" bson:"updatedAt"`
}

type LaporanStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

func (s *LaporanStats) Add(status LaporanStatus, n int64) {
	s.Total += n

	switch status {
	case LaporanStatusPending:
		s.Pending += n
	case LaporanStatusInProgress:
		s.InProgress += n
	case LaporanStatusResolved:
		s.Resolved += n
	case LaporanStatusClosed:
		s.Closed += n
	}
}
