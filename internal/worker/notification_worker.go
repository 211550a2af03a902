package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/realestate-service/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// StartFeaturedWarmer keeps the featured-listings cache warm so the first
// visitor after an invalidation does not pay the fetch. Stops with ctx.
func StartFeaturedWarmer(ctx context.Context, properties *service.PropertyService, interval time.Duration, logger *zap.Logger) {
	if properties == nil || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := properties.ListFeatured(ctx); err != nil {
					logger.Warn("featured cache warm failed", zap.Error(err))
				}
			}
		}
	}()
}
