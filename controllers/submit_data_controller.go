package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"pereval/dto"
	"pereval/services"

	"github.com/gin-gonic/gin"
)

// Тексты ответов совпадают с историческим поведением API
const (
	msgNotFound      = "Перевал не найден"
	msgEditForbidden = "Редактирование запрещено: статус заявки не 'new'"
	msgDBConnection  = "Ошибка подключения к базе данных"
	msgValidation    = "Ошибка валидации данных"
	msgInternal      = "Внутренняя ошибка сервера"
)

// SubmitDataController — контроллер для обработки запросов submitData
type SubmitDataController struct {
	Service *services.PerevalService
}

// SubmitData godoc
// @Summary      Создать заявку на перевал
// @Description  Принимает JSON с данными о перевале и сохраняет их вместе со всеми связанными сущностями. Ошибки создания возвращаются в теле ответа при HTTP 200
// @Tags         submitData
// @Accept       json
// @Produce      json
// @Param        input  body      dto.PerevalCreateDTO  true  "Данные перевала"
// @Success      200    {object}  dto.SubmitDataResponse
// @Failure      422    {object}  map[string]string
// @Router       /submitData [post]
func (c *SubmitDataController) SubmitData(ctx *gin.Context) {
	var input dto.PerevalCreateDTO
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	id, err := c.Service.CreatePereval(input)
	if err != nil {
		status, message := classifyCreateError(err)
		ctx.JSON(http.StatusOK, dto.SubmitDataResponse{
			Status:  status,
			Message: &message,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SubmitDataResponse{
		Status: http.StatusOK,
		ID:     &id,
	})
}

// classifyCreateError выбирает статус и сообщение ответа по виду ошибки
// хранилища. Закрытый набор видов, без разбора текста сообщений
func classifyCreateError(err error) (int, string) {
	var se *services.StoreError
	if errors.As(err, &se) {
		switch se.Kind {
		case services.StoreErrorConstraint:
			return http.StatusBadRequest, msgValidation
		case services.StoreErrorConnectivity:
			return http.StatusInternalServerError, msgDBConnection
		case services.StoreErrorUnknown:
			return http.StatusInternalServerError, msgInternal
		}
	}
	return http.StatusInternalServerError, msgInternal
}

// GetPereval godoc
// @Summary      Получить заявку по ID
// @Description  Возвращает заявку со вложенными пользователем, координатами, уровнями сложности и фотографиями
// @Tags         submitData
// @Produce      json
// @Param        id   path      int  true  "ID перевала"
// @Success      200  {object}  dto.PerevalResponse
// @Failure      400  {object}  map[string]string
// @Router       /submitData/{id} [get]
func (c *SubmitDataController) GetPereval(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": msgNotFound})
		return
	}

	pereval, err := c.Service.GetPerevalByID(uint(id))
	if err != nil {
		// Отсутствующая заявка исторически отдается с кодом 400
		if errors.Is(err, services.ErrPerevalNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": msgNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": msgInternal})
		return
	}

	ctx.JSON(http.StatusOK, dto.PerevalResponseFrom(pereval))
}

// UpdatePereval godoc
// @Summary      Частично обновить заявку
// @Description  Применяет частичный патч к заявке в статусе "new". Результат передается в теле ответа: state 1 — успех, state 0 — отказ
// @Tags         submitData
// @Accept       json
// @Produce      json
// @Param        id     path      int                   true  "ID перевала"
// @Param        input  body      dto.PerevalUpdateDTO  true  "Частичный патч"
// @Success      200    {object}  dto.UpdateResponse
// @Failure      422    {object}  map[string]string
// @Router       /submitData/{id} [patch]
func (c *SubmitDataController) UpdatePereval(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		message := msgNotFound
		ctx.JSON(http.StatusOK, dto.UpdateResponse{State: 0, Message: &message})
		return
	}

	var patch dto.PerevalUpdateDTO
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	if err := c.Service.UpdatePereval(uint(id), patch); err != nil {
		var message string
		switch {
		case errors.Is(err, services.ErrPerevalNotFound):
			message = msgNotFound
		case errors.Is(err, services.ErrEditForbidden):
			message = msgEditForbidden
		default:
			message = msgInternal
		}
		ctx.JSON(http.StatusOK, dto.UpdateResponse{State: 0, Message: &message})
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateResponse{State: 1})
}

// ListPerevals godoc
// @Summary      Получить заявки пользователя
// @Description  Возвращает заявки по точному совпадению email пользователя с пагинацией через offset/limit
// @Tags         submitData
// @Produce      json
// @Param        user__email  query     string  true   "Email пользователя"
// @Param        offset       query     int     false  "Смещение выборки"
// @Param        limit        query     int     false  "Максимум записей; без ограничения, если не задан"
// @Success      200  {array}   dto.PerevalResponse
// @Failure      422  {object}  map[string]string
// @Router       /submitData/ [get]
func (c *SubmitDataController) ListPerevals(ctx *gin.Context) {
	email := ctx.Query("user__email")
	if email == "" {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "параметр user__email обязателен"})
		return
	}

	offset := 0
	if v := ctx.Query("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "некорректный offset"})
			return
		}
		offset = parsed
	}

	var limit *int
	if v := ctx.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "некорректный limit"})
			return
		}
		limit = &parsed
	}

	perevals, err := c.Service.ListPerevalsByEmail(email, offset, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": msgInternal})
		return
	}

	result := make([]dto.PerevalResponse, 0, len(perevals))
	for i := range perevals {
		result = append(result, dto.PerevalResponseFrom(&perevals[i]))
	}
	ctx.JSON(http.StatusOK, result)
}
