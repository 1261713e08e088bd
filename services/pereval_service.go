package services

import (
	"errors"

	"pereval/dto"
	"pereval/models"

	"gorm.io/gorm"
)

// PerevalService — сервис для работы с заявками на перевалы.
// Каждая операция выполняется как единая транзакция: либо все строки
// агрегата записаны, либо ни одной
type PerevalService struct {
	DB *gorm.DB
}

// NewPerevalService создает новый экземпляр PerevalService
func NewPerevalService(db *gorm.DB) *PerevalService {
	return &PerevalService{DB: db}
}

// CreatePereval создает перевал и все связанные сущности одной транзакцией.
// Пользователь ищется по email и переиспользуется; статус всегда "new".
// Возвращает ID созданной заявки
func (s *PerevalService) CreatePereval(input dto.PerevalCreateDTO) (uint, error) {
	var perevalID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := resolveUser(tx, input.User)
		if err != nil {
			return err
		}

		coords := models.Coords{
			Latitude:  input.Coords.Latitude,
			Longitude: input.Coords.Longitude,
			Height:    input.Coords.Height,
		}
		if err := tx.Create(&coords).Error; err != nil {
			return err
		}

		level := models.Level{
			Winter: input.Level.Winter,
			Summer: input.Level.Summer,
			Autumn: input.Level.Autumn,
			Spring: input.Level.Spring,
		}
		if err := tx.Create(&level).Error; err != nil {
			return err
		}

		pereval := models.Pereval{
			BeautyTitle: input.BeautyTitle,
			Title:       input.Title,
			OtherTitles: input.OtherTitles,
			Connect:     input.Connect,
			AddTime:     input.AddTime.Time,
			UserID:      user.ID,
			CoordsID:    coords.ID,
			LevelID:     level.ID,
			Status:      models.StatusNew,
		}
		if err := tx.Create(&pereval).Error; err != nil {
			return err
		}

		images := make([]models.Image, 0, len(input.Images))
		for _, img := range input.Images {
			images = append(images, models.Image{
				Data:      img.Data,
				Title:     img.Title,
				PerevalID: pereval.ID,
			})
		}
		if err := tx.Create(&images).Error; err != nil {
			return err
		}

		perevalID = pereval.ID
		return nil
	})
	if err != nil {
		return 0, wrapStoreError(err)
	}

	return perevalID, nil
}

// resolveUser ищет пользователя по email и создает его, если не найден.
// Отличающиеся ФИО/телефон в повторной заявке игнорируются: идентичность
// фиксируется первой записью
func resolveUser(tx *gorm.DB, input dto.UserCreateDTO) (*models.User, error) {
	var user models.User
	err := tx.Where("email = ?", input.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		Email: input.Email,
		Fam:   input.Fam,
		Name:  input.Name,
		Otc:   input.Otc,
		Phone: input.Phone,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPerevalByID возвращает заявку со всеми вложенными сущностями.
// Для несуществующего ID возвращает ErrPerevalNotFound
func (s *PerevalService) GetPerevalByID(id uint) (*models.Pereval, error) {
	var pereval models.Pereval
	err := s.DB.
		Preload("User").
		Preload("Coords").
		Preload("Level").
		Preload("Images").
		First(&pereval, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPerevalNotFound
	}
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return &pereval, nil
}

// UpdatePereval частично обновляет заявку в статусе "new".
// Скалярные поля и подпатчи координат/уровня применяются только для
// переданных значений; список фотографий заменяется целиком.
// Для любого другого статуса возвращает ErrEditForbidden, ничего не меняя
func (s *PerevalService) UpdatePereval(id uint, patch dto.PerevalUpdateDTO) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var pereval models.Pereval
		if err := tx.First(&pereval, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPerevalNotFound
			}
			return err
		}
		if pereval.Status != models.StatusNew {
			return ErrEditForbidden
		}

		updates := map[string]interface{}{}
		if patch.BeautyTitle != nil {
			updates["beauty_title"] = *patch.BeautyTitle
		}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.OtherTitles != nil {
			updates["other_titles"] = *patch.OtherTitles
		}
		if patch.Connect != nil {
			updates["connect"] = *patch.Connect
		}
		if patch.AddTime != nil {
			updates["add_time"] = patch.AddTime.Time
		}
		if len(updates) > 0 {
			if err := tx.Model(&pereval).Updates(updates).Error; err != nil {
				return err
			}
		}

		if patch.Coords != nil {
			coordsUpdates := map[string]interface{}{}
			if patch.Coords.Latitude != nil {
				coordsUpdates["latitude"] = *patch.Coords.Latitude
			}
			if patch.Coords.Longitude != nil {
				coordsUpdates["longitude"] = *patch.Coords.Longitude
			}
			if patch.Coords.Height != nil {
				coordsUpdates["height"] = *patch.Coords.Height
			}
			if len(coordsUpdates) > 0 {
				if err := tx.Model(&models.Coords{}).
					Where("id = ?", pereval.CoordsID).
					Updates(coordsUpdates).Error; err != nil {
					return err
				}
			}
		}

		if patch.Level != nil {
			levelUpdates := map[string]interface{}{}
			if patch.Level.Winter != nil {
				levelUpdates["winter"] = *patch.Level.Winter
			}
			if patch.Level.Summer != nil {
				levelUpdates["summer"] = *patch.Level.Summer
			}
			if patch.Level.Autumn != nil {
				levelUpdates["autumn"] = *patch.Level.Autumn
			}
			if patch.Level.Spring != nil {
				levelUpdates["spring"] = *patch.Level.Spring
			}
			if len(levelUpdates) > 0 {
				if err := tx.Model(&models.Level{}).
					Where("id = ?", pereval.LevelID).
					Updates(levelUpdates).Error; err != nil {
					return err
				}
			}
		}

		// Фотографии заменяются целиком: пустой список удаляет все
		if patch.Images != nil {
			if err := tx.Where("pereval_id = ?", pereval.ID).
				Delete(&models.Image{}).Error; err != nil {
				return err
			}
			if len(patch.Images) > 0 {
				images := make([]models.Image, 0, len(patch.Images))
				for _, img := range patch.Images {
					images = append(images, models.Image{
						Data:      img.Data,
						Title:     img.Title,
						PerevalID: pereval.ID,
					})
				}
				if err := tx.Create(&images).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	return wrapStoreError(err)
}

// ListPerevalsByEmail возвращает заявки пользователя по точному совпадению
// email (с учетом регистра), упорядоченные по ID. Offset применяется всегда,
// limit — только если передан
func (s *PerevalService) ListPerevalsByEmail(email string, offset int, limit *int) ([]models.Pereval, error) {
	query := s.DB.
		Joins("JOIN users ON users.id = pereval.user_id").
		Where("users.email = ?", email).
		Order("pereval.id ASC").
		Offset(offset).
		Preload("User").
		Preload("Coords").
		Preload("Level").
		Preload("Images")
	if limit != nil {
		query = query.Limit(*limit)
	}

	var perevals []models.Pereval
	if err := query.Find(&perevals).Error; err != nil {
		return nil, wrapStoreError(err)
	}
	return perevals, nil
}
