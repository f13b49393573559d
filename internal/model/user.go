package model

import "time"

// User — зарегистрированный пользователь, владелец ссылок и постов.
type User struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Login string `gorm:"uniqueIndex;not null" json:"login"`

	// bcrypt-хеш, наружу не отдаём
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
