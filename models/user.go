package models

// User представляет пользователя, который добавляет перевалы
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Email string `json:"email" gorm:"unique;index;not null"`
	Fam   string `json:"fam" gorm:"not null"`   // Фамилия пользователя
	Name  string `json:"name" gorm:"not null"`  // Имя пользователя
	Otc   string `json:"otc"`                   // Отчество (может быть пустым)
	Phone string `json:"phone" gorm:"not null"` // Номер телефона
}

// TableName задает имя таблицы для модели User
func (User) TableName() string {
	return "users"
}
