package models

import "time"

type PhotographerDto struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateProfileRequest struct {
	Bio *string `json:"bio" validate:"omitempty,max=1000"`
}

func NewPhotographerDto(u *User) PhotographerDto {
	return PhotographerDto{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Name:      u.FullName(),
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}
