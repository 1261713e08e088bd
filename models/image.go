package models

// Image представляет фотографию перевала в формате base64
type Image struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Data      string `json:"data" gorm:"type:text;not null"` // Само изображение в base64
	Title     string `json:"title" gorm:"not null"`          // Название фотографии
	PerevalID uint   `json:"pereval_id" gorm:"not null;index"`
}

// TableName задает имя таблицы для модели Image
func (Image) TableName() string {
	return "images"
}
