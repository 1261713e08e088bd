package dto

// CoordsCreateDTO — координаты перевала при создании
type CoordsCreateDTO struct {
	Latitude  string `json:"latitude" binding:"required"`
	Longitude string `json:"longitude" binding:"required"`
	Height    string `json:"height" binding:"required"`
}

// CoordsUpdateDTO — частичное обновление координат.
// nil-поле означает "не трогать", непустой указатель — перезаписать
type CoordsUpdateDTO struct {
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
	Height    *string `json:"height"`
}

// CoordsResponse — координаты в ответе API
type CoordsResponse struct {
	ID        uint   `json:"id"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Height    string `json:"height"`
}
