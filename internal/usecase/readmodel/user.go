package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	IsActive  bool
	LastLogin *time.Time
	CreatedAt time.Time
}
