package main

import (
	"log"
	"net/http"
	"os"

	"pereval/controllers"
	"pereval/database"
	docs "pereval/docs"
	"pereval/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Перевалы API
// @version         1.0.0
// @description     API для работы с данными о перевалах
// @BasePath        /api

// Root godoc
// @Summary Проверка работы API
// @Description Корневой endpoint, подтверждающий, что сервис запущен
// @Tags service
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Перевалы API работает!"})
}

// Health godoc
// @Summary Состояние сервиса
// @Description Endpoint для проверки состояния приложения
// @Tags service
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func main() {
	// Инициализация подключения к базе данных
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("%v", err)
	}

	// Инициализация сервисов
	perevalService := services.NewPerevalService(db)

	// Инициализация контроллеров
	submitDataController := &controllers.SubmitDataController{
		Service: perevalService,
	}

	r := gin.Default()

	// CORS открыт для всех источников
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	r.GET("/", Root)
	r.GET("/health", Health)

	docs.SwaggerInfo.BasePath = "/api"
	api := r.Group("/api")
	{
		api.POST("/submitData", submitDataController.SubmitData)
		api.GET("/submitData/", submitDataController.ListPerevals)
		api.GET("/submitData/:id", submitDataController.GetPereval)
		api.PATCH("/submitData/:id", submitDataController.UpdatePereval)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
