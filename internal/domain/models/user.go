package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id" bson:"_id"`
	Username     string    `db:"username" json:"username" bson:"username"`
	Email        string    `db:"email" json:"email" bson:"email"`
	PasswordHash []byte    `db:"password_hash" json:"-" bson:"passwordHash"`
	Role         Role      `db:"role" json:"role" bson:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt" bson:"updatedAt"`
}
