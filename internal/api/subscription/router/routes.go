// Package router đăng ký các route thuộc domain subscription.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	subscriptionhdl "video_tube/internal/api/subscription/handler"
)

// Register đăng ký tất cả route subscription lên v1. Toàn bộ yêu cầu đăng nhập.
func Register(v1 fiber.Router) error {
	subscriptionHandler, err := subscriptionhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %w", err)
	}

	subscriptions := v1.Group("/subscriptions")
	subscriptions.Use(middleware.RequireAuth())

	subscriptions.Post("/c/:channelId", subscriptionHandler.Toggle)
	subscriptions.Get("/c/:channelId", subscriptionHandler.ListSubscribers)
	subscriptions.Get("/u/:subscriberId", subscriptionHandler.ListSubscribedChannels)

	return nil
}
