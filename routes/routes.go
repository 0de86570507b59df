package routes

import (
	"github.com/RitheshHB23/cafeteriaa/controllers"
	"github.com/RitheshHB23/cafeteriaa/repository"
	"github.com/RitheshHB23/cafeteriaa/services"
	"github.com/RitheshHB23/cafeteriaa/ws"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database, hub *ws.NotifyHub) {
	// Repositories
	catRepo := repository.NewCategoryRepository(db)
	dishRepo := repository.NewDishRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	catSvc := services.NewCategoryService(catRepo)
	dishSvc := services.NewDishService(dishRepo)
	cartSvc := services.NewCartService(cartRepo, dishRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, notifRepo, hub)
	notifSvc := services.NewNotificationService(notifRepo)

	// Controllers
	catCtrl := controllers.NewCategoryController(catSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Cafetaria API is running"})
	})

	api.GET("/categories", catCtrl.List)
	api.POST("/categories", catCtrl.Create)

	api.GET("/dishes", dishCtrl.List) // ?category=
	api.GET("/dishes/popular", dishCtrl.Popular)
	api.POST("/dishes", dishCtrl.Create)

	api.GET("/cart/:session_id", cartCtrl.Get)
	api.POST("/cart/add", cartCtrl.Add)
	api.PUT("/cart/update", cartCtrl.Update)
	api.DELETE("/cart/remove/:session_id/:dish_id", cartCtrl.Remove)
	api.DELETE("/cart/clear/:session_id", cartCtrl.Clear)

	api.POST("/orders", orderCtrl.Create)
	api.GET("/orders/history/:session_id", orderCtrl.History)
	api.GET("/orders/:order_id", orderCtrl.Detail)

	api.GET("/notifications", notifCtrl.List)
	api.PUT("/notifications/:id/read", notifCtrl.MarkRead)
	api.GET("/notifications/unread/count", notifCtrl.UnreadCount)

	api.GET("/ws/notifications", hub.HandleWebSocket)
}
