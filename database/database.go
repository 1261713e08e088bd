package database

import (
	"fmt"
	"log"
	"os"

	"pereval/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает подключение к PostgreSQL по параметрам из окружения
// и выполняет миграцию схемы. Возвращает handle, который передается
// сервисам при создании — глобального состояния здесь нет
func Connect() (*gorm.DB, error) {
	// .env нужен для локального запуска; в докере переменные уже заданы
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используем переменные окружения")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError приводит ошибки драйвера к сентинелам GORM
	// (gorm.ErrDuplicatedKey и т.д.), по которым их классифицирует сервис
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("ошибка миграции: %w", err)
	}

	log.Println("Подключение к базе данных успешно установлено!")
	return db, nil
}

// Migrate создает таблицы для всех сущностей перевала
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Coords{},
		&models.Level{},
		&models.Image{},
		&models.Pereval{},
	)
}
