package dto

// LevelCreateDTO — уровни сложности по сезонам, все поля необязательные
type LevelCreateDTO struct {
	Winter string `json:"winter"`
	Summer string `json:"summer"`
	Autumn string `json:"autumn"`
	Spring string `json:"spring"`
}

// LevelUpdateDTO — частичное обновление уровней сложности
type LevelUpdateDTO struct {
	Winter *string `json:"winter"`
	Summer *string `json:"summer"`
	Autumn *string `json:"autumn"`
	Spring *string `json:"spring"`
}

// LevelResponse — уровни сложности в ответе API
type LevelResponse struct {
	ID     uint   `json:"id"`
	Winter string `json:"winter"`
	Summer string `json:"summer"`
	Autumn string `json:"autumn"`
	Spring string `json:"spring"`
}
