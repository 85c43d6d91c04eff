package routes

import (
	"GuardianMobile/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Public routes
	r.GET("/", controllers.APIRunning)
	r.GET("/health", controllers.HealthCheck)

	// Регистрация и привязка устройств
	devices := r.Group("/devices")
	{
		devices.POST("/register", controllers.RegisterDevice)
		devices.POST("/link", controllers.LinkDevices)
		devices.DELETE("/link", controllers.UnlinkDevices)
		devices.GET("/:device_id", controllers.GetDevice)
		devices.GET("/:device_id/peer", controllers.GetPeer)
		devices.POST("/:device_id/login", controllers.RecordDeviceLogin)
	}

	// Тревоги ребенок -> родитель
	alerts := r.Group("/alerts")
	{
		alerts.POST("/sos", controllers.SendSOSAlert)
		alerts.POST("/geofence", controllers.SendGeofenceAlert)
		alerts.POST("/battery", controllers.SendBatteryAlert)
		alerts.POST("/app-installed", controllers.SendAppInstalledAlert)
	}

	// Команды родитель -> ребенок
	commands := r.Group("/commands")
	{
		commands.POST("/limit-set", controllers.SendLimitSetCommand)
		commands.POST("/app-block", controllers.SendAppBlockedCommand)
		commands.POST("/device-lock", controllers.SendDeviceLockCommand)
	}

	// Журнал уведомлений, раздельно для родителей и детей
	notifications := r.Group("/notifications")
	{
		notifications.POST("/send", controllers.SendNotification)
		notifications.PUT("/:audience/read/:notification_id", controllers.MarkNotificationRead)
		notifications.GET("/:audience/user/:user_id", controllers.ListNotifications)
		notifications.GET("/:audience/user/:user_id/unread", controllers.GetUnreadCount)
		notifications.PUT("/:audience/user/:user_id/read-all", controllers.MarkAllNotificationsRead)
		notifications.DELETE("/:audience/user/:user_id/cleanup", controllers.CleanupNotifications)
	}

	// Экранное время и лимиты приложений
	screenTime := r.Group("/screen-time")
	{
		screenTime.POST("/app-limit", controllers.SetAppLimit)
		screenTime.POST("/limit", controllers.SetScreenTimeLimit)
		screenTime.GET("/:device_id", controllers.GetDeviceUsage)
		screenTime.POST("/:device_id/usage", controllers.RecordAppUsage)
	}

	// Pull-карта лимитов, ее детское устройство забирает целиком
	appLimits := r.Group("/app-limits")
	{
		appLimits.GET("/:device_id", controllers.GetAppLimits)
		appLimits.PUT("/:device_id", controllers.ReplaceAppLimits)
		appLimits.PUT("/:device_id/package/:package_name", controllers.SetAppLimitByPackage)
		appLimits.DELETE("/:device_id", controllers.ClearAppLimits)
	}

	// Синхронизация телеметрии с детского устройства
	sync := r.Group("/sync")
	{
		sync.POST("/location", controllers.SyncLocation)
		sync.POST("/calls", controllers.SyncCallLog)
		sync.POST("/messages", controllers.SyncMessages)
	}

	// Чтение телеметрии родителем
	telemetry := r.Group("/telemetry")
	{
		telemetry.GET("/location/:device_id", controllers.GetLocation)
		telemetry.GET("/calls/:device_id", controllers.GetCallLog)
		telemetry.GET("/messages/:device_id", controllers.GetMessages)
	}

	// Задачи для ребенка
	tasks := r.Group("/tasks")
	{
		tasks.POST("", controllers.CreateTask)
		tasks.POST("/:task_id/complete", controllers.CompleteTask)
		tasks.DELETE("/:task_id", controllers.DeleteTask)
		tasks.GET("/child/:child_id", controllers.ListTasksForChild)
		tasks.GET("/parent/:parent_id", controllers.ListTasksForParent)
	}
}
