package services

import (
	"errors"
	"testing"
	"time"

	"pereval/database"
	"pereval/dto"
	"pereval/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Одно соединение, иначе каждый коннект пула получит свою пустую in-memory базу
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func strPtr(s string) *string {
	return &s
}

func sampleCreateInput() dto.PerevalCreateDTO {
	return dto.PerevalCreateDTO{
		BeautyTitle: "пер. Тестовый",
		Title:       "Тестовый перевал",
		OtherTitles: "Тест",
		Connect:     "",
		AddTime:     dto.DateTime{Time: time.Date(2021, 9, 22, 13, 18, 13, 0, time.UTC)},
		User: dto.UserCreateDTO{
			Email: "test@example.com",
			Fam:   "Тестов",
			Name:  "Тест",
			Otc:   "Тестович",
			Phone: "+7 999 999 99 99",
		},
		Coords: dto.CoordsCreateDTO{
			Latitude:  "45.3842",
			Longitude: "7.1525",
			Height:    "1200",
		},
		Level: dto.LevelCreateDTO{
			Summer: "1А",
			Autumn: "1А",
		},
		Images: []dto.ImageCreateDTO{
			{Data: "iVBORw0KGgoAAAANSUhEUg==", Title: "Тестовое изображение"},
		},
	}
}

func TestCreatePereval(t *testing.T) {
	service := NewPerevalService(openTestDB(t))

	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)
	assert.NotZero(t, id)

	pereval, err := service.GetPerevalByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Тестовый перевал", pereval.Title)
	assert.Equal(t, models.StatusNew, pereval.Status)
}

func TestCreatePerevalRoundTrip(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	input := sampleCreateInput()

	id, err := service.CreatePereval(input)
	require.NoError(t, err)

	pereval, err := service.GetPerevalByID(id)
	require.NoError(t, err)

	assert.Equal(t, input.Coords.Latitude, pereval.Coords.Latitude)
	assert.Equal(t, input.Coords.Longitude, pereval.Coords.Longitude)
	assert.Equal(t, input.Coords.Height, pereval.Coords.Height)
	assert.Equal(t, input.Level.Summer, pereval.Level.Summer)
	assert.Equal(t, input.Level.Autumn, pereval.Level.Autumn)
	assert.Empty(t, pereval.Level.Winter)
	require.Len(t, pereval.Images, 1)
	assert.Equal(t, input.Images[0].Data, pereval.Images[0].Data)
	assert.Equal(t, input.Images[0].Title, pereval.Images[0].Title)
	assert.Equal(t, input.User.Email, pereval.User.Email)
}

func TestCreatePerevalReusesUserByEmail(t *testing.T) {
	db := openTestDB(t)
	service := NewPerevalService(db)

	firstID, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	// Вторая заявка с тем же email, но другими ФИО и телефоном
	second := sampleCreateInput()
	second.Title = "Второй перевал"
	second.User.Fam = "Другой"
	second.User.Phone = "+7 000 000 00 00"
	secondID, err := service.CreatePereval(second)
	require.NoError(t, err)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 1, userCount)

	first, err := service.GetPerevalByID(firstID)
	require.NoError(t, err)
	created, err := service.GetPerevalByID(secondID)
	require.NoError(t, err)

	assert.Equal(t, first.UserID, created.UserID)
	// Идентичность фиксируется первой записью
	assert.Equal(t, "Тестов", created.User.Fam)
	assert.Equal(t, "+7 999 999 99 99", created.User.Phone)
}

func TestGetPerevalByIDNotFound(t *testing.T) {
	service := NewPerevalService(openTestDB(t))

	pereval, err := service.GetPerevalByID(999)
	assert.Nil(t, pereval)
	assert.ErrorIs(t, err, ErrPerevalNotFound)
}

func TestUpdatePerevalScalars(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	err = service.UpdatePereval(id, dto.PerevalUpdateDTO{
		BeautyTitle: strPtr("Обновленное название"),
		Title:       strPtr("Обновленный перевал"),
	})
	require.NoError(t, err)

	pereval, err := service.GetPerevalByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Обновленное название", pereval.BeautyTitle)
	assert.Equal(t, "Обновленный перевал", pereval.Title)
	// Не переданные поля не тронуты
	assert.Equal(t, "Тест", pereval.OtherTitles)
}

func TestUpdatePerevalPartialCoords(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	err = service.UpdatePereval(id, dto.PerevalUpdateDTO{
		Coords: &dto.CoordsUpdateDTO{Latitude: strPtr("46.0000")},
	})
	require.NoError(t, err)

	pereval, err := service.GetPerevalByID(id)
	require.NoError(t, err)
	assert.Equal(t, "46.0000", pereval.Coords.Latitude)
	assert.Equal(t, "7.1525", pereval.Coords.Longitude)
	assert.Equal(t, "1200", pereval.Coords.Height)
}

func TestUpdatePerevalPartialLevel(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	err = service.UpdatePereval(id, dto.PerevalUpdateDTO{
		Level: &dto.LevelUpdateDTO{Winter: strPtr("2А")},
	})
	require.NoError(t, err)

	pereval, err := service.GetPerevalByID(id)
	require.NoError(t, err)
	assert.Equal(t, "2А", pereval.Level.Winter)
	assert.Equal(t, "1А", pereval.Level.Summer)
}

func TestUpdatePerevalReplacesImages(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	err = service.UpdatePereval(id, dto.PerevalUpdateDTO{
		Images: []dto.ImageCreateDTO{
			{Data: "AAAA", Title: "Первая"},
			{Data: "BBBB", Title: "Вторая"},
		},
	})
	require.NoError(t, err)

	pereval, err := service.GetPerevalByID(id)
	require.NoError(t, err)
	require.Len(t, pereval.Images, 2)
	assert.Equal(t, "Первая", pereval.Images[0].Title)
	assert.Equal(t, "Вторая", pereval.Images[1].Title)
}

func TestUpdatePerevalEmptyImageListDeletesAll(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	err = service.UpdatePereval(id, dto.PerevalUpdateDTO{
		Images: []dto.ImageCreateDTO{},
	})
	require.NoError(t, err)

	pereval, err := service.GetPerevalByID(id)
	require.NoError(t, err)
	assert.Empty(t, pereval.Images)
}

func TestUpdatePerevalNilImagesUntouched(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	err = service.UpdatePereval(id, dto.PerevalUpdateDTO{
		Title: strPtr("Без фотографий не трогаем"),
	})
	require.NoError(t, err)

	pereval, err := service.GetPerevalByID(id)
	require.NoError(t, err)
	assert.Len(t, pereval.Images, 1)
}

func TestUpdatePerevalWrongStatus(t *testing.T) {
	db := openTestDB(t)
	service := NewPerevalService(db)
	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	// Статус меняет внешний процесс модерации
	require.NoError(t, db.Model(&models.Pereval{}).
		Where("id = ?", id).
		Update("status", models.StatusPending).Error)

	before, err := service.GetPerevalByID(id)
	require.NoError(t, err)

	err = service.UpdatePereval(id, dto.PerevalUpdateDTO{
		Title:  strPtr("Новое название"),
		Coords: &dto.CoordsUpdateDTO{Latitude: strPtr("0.0")},
		Images: []dto.ImageCreateDTO{},
	})
	assert.ErrorIs(t, err, ErrEditForbidden)

	after, err := service.GetPerevalByID(id)
	require.NoError(t, err)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Coords.Latitude, after.Coords.Latitude)
	assert.Len(t, after.Images, 1)
}

func TestUpdatePerevalNotFound(t *testing.T) {
	service := NewPerevalService(openTestDB(t))

	err := service.UpdatePereval(999, dto.PerevalUpdateDTO{Title: strPtr("Новое название")})
	assert.ErrorIs(t, err, ErrPerevalNotFound)
}

func TestListPerevalsByEmail(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	id, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	perevals, err := service.ListPerevalsByEmail("test@example.com", 0, nil)
	require.NoError(t, err)
	require.Len(t, perevals, 1)
	assert.Equal(t, id, perevals[0].ID)
	assert.Equal(t, "пер. Тестовый", perevals[0].BeautyTitle)
}

func TestListPerevalsByEmailEmpty(t *testing.T) {
	service := NewPerevalService(openTestDB(t))

	perevals, err := service.ListPerevalsByEmail("nonexistent@example.com", 0, nil)
	require.NoError(t, err)
	assert.Empty(t, perevals)
}

func TestListPerevalsByEmailCaseSensitive(t *testing.T) {
	service := NewPerevalService(openTestDB(t))
	_, err := service.CreatePereval(sampleCreateInput())
	require.NoError(t, err)

	perevals, err := service.ListPerevalsByEmail("TEST@EXAMPLE.COM", 0, nil)
	require.NoError(t, err)
	assert.Empty(t, perevals)
}

func TestListPerevalsByEmailPagination(t *testing.T) {
	service := NewPerevalService(openTestDB(t))

	for i := 0; i < 5; i++ {
		input := sampleCreateInput()
		input.Title = "Перевал " + string(rune('А'+i))
		_, err := service.CreatePereval(input)
		require.NoError(t, err)
	}

	limit := 2
	page1, err := service.ListPerevalsByEmail("test@example.com", 0, &limit)
	require.NoError(t, err)
	page2, err := service.ListPerevalsByEmail("test@example.com", 2, &limit)
	require.NoError(t, err)

	require.Len(t, page1, 2)
	require.Len(t, page2, 2)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)
	assert.NotEqual(t, page1[1].ID, page2[1].ID)
	// Порядок стабилен: ID по возрастанию
	assert.Less(t, page1[0].ID, page1[1].ID)
	assert.Less(t, page1[1].ID, page2[0].ID)

	rest, err := service.ListPerevalsByEmail("test@example.com", 4, nil)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestWrapStoreErrorKinds(t *testing.T) {
	var se *StoreError

	err := wrapStoreError(gorm.ErrDuplicatedKey)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StoreErrorConstraint, se.Kind)

	err = wrapStoreError(gorm.ErrInvalidDB)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StoreErrorConnectivity, se.Kind)

	err = wrapStoreError(errors.New("что-то пошло не так"))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StoreErrorUnknown, se.Kind)

	assert.ErrorIs(t, wrapStoreError(ErrPerevalNotFound), ErrPerevalNotFound)
	assert.ErrorIs(t, wrapStoreError(ErrEditForbidden), ErrEditForbidden)
	assert.NoError(t, wrapStoreError(nil))
}
