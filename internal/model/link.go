package model

import "time"

// Link — сохранённая ссылка. Владелец назначается при создании и не меняется.
type Link struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	URL         string `gorm:"not null" json:"url"`
	Description string `gorm:"not null" json:"description"`

	OwnerID int64 `gorm:"not null;index" json:"-"` // ссылка на users.id
	Owner   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
