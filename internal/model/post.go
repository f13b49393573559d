package model

import "time"

// Post — запись с заголовком и прикреплённой картинкой.
type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`

	ImageID *uint  `gorm:"index" json:"-"` // опциональная ссылка на images.id
	Image   *Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"image"`

	OwnerID int64 `gorm:"not null;index" json:"-"` // ссылка на users.id
	Owner   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
