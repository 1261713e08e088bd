package models

// Level представляет уровни сложности прохождения перевала по сезонам
type Level struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Winter string `json:"winter"` // Зимний уровень
	Summer string `json:"summer"` // Летний уровень
	Autumn string `json:"autumn"` // Осенний уровень
	Spring string `json:"spring"` // Весенний уровень
}

// TableName задает имя таблицы для модели Level
func (Level) TableName() string {
	return "levels"
}
