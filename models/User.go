package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Auth0ID   string    `gorm:"uniqueIndex;not null" json:"auth0Id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Nickname  string    `json:"nickname"`
	Picture   string    `json:"picture"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the profile subset exposed on the follow-graph routes.
type PublicUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Picture  string `json:"picture"`
}

// UpdateBioInput - used for PUT /me/bio
type UpdateBioInput struct {
	Bio string `json:"bio"`
}
