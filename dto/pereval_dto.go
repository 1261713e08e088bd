package dto

import "pereval/models"

// PerevalCreateDTO — полные данные заявки на перевал.
// Поле статуса намеренно отсутствует: статус всегда выставляет сервис
type PerevalCreateDTO struct {
	BeautyTitle string           `json:"beauty_title" binding:"required"`
	Title       string           `json:"title" binding:"required"`
	OtherTitles string           `json:"other_titles"`
	Connect     string           `json:"connect"`
	AddTime     DateTime         `json:"add_time" binding:"required"`
	User        UserCreateDTO    `json:"user" binding:"required"`
	Coords      CoordsCreateDTO  `json:"coords" binding:"required"`
	Level       LevelCreateDTO   `json:"level"`
	Images      []ImageCreateDTO `json:"images" binding:"required,min=1,dive"`
}

// PerevalUpdateDTO — частичное обновление заявки.
// nil-поле означает "оставить как есть". Данные пользователя здесь
// отсутствуют намеренно: email, ФИО и телефон не редактируются через
// этот путь, что бы ни пришло в теле запроса.
// Images == nil — фотографии не трогаем; непустой или пустой список —
// полная замена (пустой список удаляет все фотографии)
type PerevalUpdateDTO struct {
	BeautyTitle *string          `json:"beauty_title"`
	Title       *string          `json:"title"`
	OtherTitles *string          `json:"other_titles"`
	Connect     *string          `json:"connect"`
	AddTime     *DateTime        `json:"add_time"`
	Coords      *CoordsUpdateDTO `json:"coords"`
	Level       *LevelUpdateDTO  `json:"level"`
	Images      []ImageCreateDTO `json:"images"`
}

// SubmitDataResponse — ответ POST /submitData.
// Внутренний статус (200/400/500) передается в теле при HTTP 200
type SubmitDataResponse struct {
	Status  int     `json:"status"`
	Message *string `json:"message"`
	ID      *uint   `json:"id"`
}

// UpdateResponse — ответ PATCH /submitData/{id}
type UpdateResponse struct {
	State   int     `json:"state"` // 1 — успех, 0 — отказ
	Message *string `json:"message"`
}

// PerevalResponse — полная заявка со вложенными сущностями
type PerevalResponse struct {
	ID          uint            `json:"id"`
	BeautyTitle string          `json:"beauty_title"`
	Title       string          `json:"title"`
	OtherTitles string          `json:"other_titles"`
	Connect     string          `json:"connect"`
	AddTime     DateTime        `json:"add_time"`
	User        UserResponse    `json:"user"`
	Coords      CoordsResponse  `json:"coords"`
	Level       LevelResponse   `json:"level"`
	Images      []ImageResponse `json:"images"`
	Status      string          `json:"status"`
}

// PerevalResponseFrom собирает ответ API из загруженного агрегата
func PerevalResponseFrom(p *models.Pereval) PerevalResponse {
	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{
			ID:    img.ID,
			Data:  img.Data,
			Title: img.Title,
		})
	}

	return PerevalResponse{
		ID:          p.ID,
		BeautyTitle: p.BeautyTitle,
		Title:       p.Title,
		OtherTitles: p.OtherTitles,
		Connect:     p.Connect,
		AddTime:     DateTime{p.AddTime},
		User: UserResponse{
			ID:    p.User.ID,
			Email: p.User.Email,
			Fam:   p.User.Fam,
			Name:  p.User.Name,
			Otc:   p.User.Otc,
			Phone: p.User.Phone,
		},
		Coords: CoordsResponse{
			ID:        p.Coords.ID,
			Latitude:  p.Coords.Latitude,
			Longitude: p.Coords.Longitude,
			Height:    p.Coords.Height,
		},
		Level: LevelResponse{
			ID:     p.Level.ID,
			Winter: p.Level.Winter,
			Summer: p.Level.Summer,
			Autumn: p.Level.Autumn,
			Spring: p.Level.Spring,
		},
		Images: images,
		Status: string(p.Status),
	}
}
