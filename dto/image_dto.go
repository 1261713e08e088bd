package dto

// ImageCreateDTO — фотография перевала при создании или полной замене
type ImageCreateDTO struct {
	Data  string `json:"data" binding:"required"` // Изображение в base64
	Title string `json:"title" binding:"required"`
}

// ImageResponse — фотография в ответе API
type ImageResponse struct {
	ID    uint   `json:"id"`
	Data  string `json:"data"`
	Title string `json:"title"`
}
