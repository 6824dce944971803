package worker

import (
	"github.com/smartbiz360/biz-service/internal/service"
)

// StartNotificationWorker registers notification handlers for order events.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
