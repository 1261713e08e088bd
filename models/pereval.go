package models

import "time"

// PerevalStatus — статус обработки заявки на перевал
type PerevalStatus string

const (
	StatusNew      PerevalStatus = "new"      // Новая заявка, доступна для редактирования
	StatusPending  PerevalStatus = "pending"  // Взята модератором в работу
	StatusAccepted PerevalStatus = "accepted" // Модерация прошла успешно
	StatusRejected PerevalStatus = "rejected" // Модерация прошла, информация не принята
)

// IsValid проверяет, что статус входит в закрытый набор значений
func (s PerevalStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Pereval представляет перевал — основную сущность заявки.
// Владеет своими Coords, Level и Images; User переиспользуется между заявками
type Pereval struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	BeautyTitle string        `json:"beauty_title" gorm:"not null"` // Красивое название перевала
	Title       string        `json:"title" gorm:"not null"`        // Основное название
	OtherTitles string        `json:"other_titles"`                 // Другие известные названия
	Connect     string        `json:"connect"`                      // Соединение с другими перевалами
	AddTime     time.Time     `json:"add_time" gorm:"not null"`     // Когда была добавлена заявка
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	CoordsID    uint          `json:"coords_id" gorm:"not null"`
	LevelID     uint          `json:"level_id" gorm:"not null"`
	Status      PerevalStatus `json:"status" gorm:"not null;default:'new'"`

	User   User    `json:"user" gorm:"foreignKey:UserID"`
	Coords Coords  `json:"coords" gorm:"foreignKey:CoordsID"`
	Level  Level   `json:"level" gorm:"foreignKey:LevelID"`
	Images []Image `json:"images" gorm:"foreignKey:PerevalID"`
}

// TableName задает имя таблицы для модели Pereval
func (Pereval) TableName() string {
	return "pereval"
}
