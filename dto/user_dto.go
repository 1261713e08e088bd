package dto

// UserCreateDTO — данные пользователя при создании перевала
type UserCreateDTO struct {
	Email string `json:"email" binding:"required,email"`
	Fam   string `json:"fam" binding:"required"` // Фамилия
	Name  string `json:"name" binding:"required"`
	Otc   string `json:"otc"` // Отчество, может отсутствовать
	Phone string `json:"phone" binding:"required"`
}

// UserResponse — данные пользователя в ответе API
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Fam   string `json:"fam"`
	Name  string `json:"name"`
	Otc   string `json:"otc"`
	Phone string `json:"phone"`
}
