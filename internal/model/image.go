package model

// Image — загруженная картинка. Содержимое храним в БД.
type Image struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Image string `gorm:"not null;uniqueIndex" json:"image"` // имя сохранённого файла

	Data []byte `gorm:"not null" json:"-"`
}
