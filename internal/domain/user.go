package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Phone     string
	Name      string
	Email     string
	Address   string
	Pincode   string
	CreatedAt time.Time
}
