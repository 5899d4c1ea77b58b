package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookRM struct {
	ID          uuid.UUID
	Title       string
	Author      string
	Genre       string
	Description string
	Rating      float64
	ImageURL    string
	Quantity    int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
