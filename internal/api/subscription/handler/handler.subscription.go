// Package subscriptionhdl - handler cho các route đăng ký kênh.
package subscriptionhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	subscriptionsvc "video_tube/internal/api/subscription/service"
	"video_tube/internal/logger"
)

// SubscriptionHandler xử lý các route đăng ký kênh
type SubscriptionHandler struct {
	*basehdl.BaseHandler
	subscriptionService *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := subscriptionsvc.NewSubscriptionService()
	if err != nil {
		return nil, err
	}
	return &SubscriptionHandler{
		BaseHandler:         &basehdl.BaseHandler{},
		subscriptionService: subscriptionService,
	}, nil
}

// Toggle bật/tắt đăng ký với một kênh
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channelID, err := h.ParamObjectID(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.subscriptionService.Toggle(c.Context(), channelID, actorID)
		if err == nil {
			logger.LogAction("subscription.toggle", "channel", channelID.Hex(), c, map[string]any{
				"subscribed": data.Subscribed,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ListSubscribers trả về danh sách người đăng ký của một kênh
func (h *SubscriptionHandler) ListSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.ParamObjectID(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := h.ParseListQuery(c)
		data, err := h.subscriptionService.ListSubscribers(c.Context(), channelID, q.Page, q.Limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ListSubscribedChannels trả về danh sách kênh một người dùng đã đăng ký
func (h *SubscriptionHandler) ListSubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := h.ParamObjectID(c, "subscriberId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := h.ParseListQuery(c)
		data, err := h.subscriptionService.ListSubscribedChannels(c.Context(), subscriberID, q.Page, q.Limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}
