package response

import (
	"time"

	"naija-barter/internal/data/entity"
)

type LocationResponse struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func LocationToResponse(location *entity.Location) LocationResponse {
	return LocationResponse{
		ID:        location.ID.String(),
		State:     location.State,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}
}
