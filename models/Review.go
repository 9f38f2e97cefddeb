package models

import "time"

type ReviewItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Star      int       `gorm:"not null" json:"star"`
	GameID    uint      `gorm:"not null" json:"gameId"`
	Game      Game      `gorm:"foreignKey:GameID" json:"game"`
	UserID    uint      `gorm:"not null" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewInput - used for validation of create and update review requests.
// Field order matters: the formatter reports the first failing field.
type ReviewInput struct {
	GameName      string `json:"gameName" validate:"required"`
	Title         string `json:"title" validate:"required,min=5,max=100"`
	ReviewContent string `json:"reviewContent" validate:"required,min=20,max=1000"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
}
