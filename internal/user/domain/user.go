package domain

import (
	"time"

	clientdomain "github.com/ridloal/rodamientos-backoffice/internal/client/domain"
)

// User adalah operator konsol back-office.
type User struct {
	ID           int64               `json:"id"`
	Username     string              `json:"username"`
	Person       clientdomain.Person `json:"person"`
	PasswordHash string              `json:"-"` // Jangan kirim password hash ke client
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
