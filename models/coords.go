package models

// Coords представляет координаты перевала на карте.
// Значения хранятся как строки — так данные приходят от мобильных клиентов
type Coords struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Latitude  string `json:"latitude" gorm:"not null"`  // Широта перевала
	Longitude string `json:"longitude" gorm:"not null"` // Долгота перевала
	Height    string `json:"height" gorm:"not null"`    // Высота над уровнем моря
}

// TableName задает имя таблицы для модели Coords
func (Coords) TableName() string {
	return "coords"
}
