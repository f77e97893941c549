package handler

import (
	"github.com/tasknest/tasknest/internal/domain"
)

// AuthResponse is the JSON body returned by register and login.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// ItemDTO is the JSON representation of an item. The owner is deliberately
// absent from the wire format.
type ItemDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Checked   bool   `json:"checked"`
	Favourite bool   `json:"favourite"`
}

func toItemDTO(item *domain.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID,
		Title:     item.Title,
		Checked:   item.Checked,
		Favourite: item.Favourite,
	}
}

func toItemDTOs(items []domain.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i := range items {
		dtos[i] = toItemDTO(&items[i])
	}
	return dtos
}

// ProfileDTO is the JSON representation of a user profile.
type ProfileDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	ListTitle string `json:"listTitle"`
}
