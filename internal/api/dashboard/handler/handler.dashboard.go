// Package dashboardhdl - handler cho các route dashboard của chủ kênh.
package dashboardhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	dashboardsvc "video_tube/internal/api/dashboard/service"
)

// DashboardHandler xử lý các route dashboard
type DashboardHandler struct {
	*basehdl.BaseHandler
	dashboardService *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo mới DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return nil, err
	}
	return &DashboardHandler{
		BaseHandler:      &basehdl.BaseHandler{},
		dashboardService: dashboardService,
	}, nil
}

// GetChannelStats trả về số liệu tổng hợp kênh của actor
func (h *DashboardHandler) GetChannelStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.dashboardService.GetChannelStats(c.Context(), actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetChannelVideos trả về toàn bộ video kênh của actor, phân trang
func (h *DashboardHandler) GetChannelVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := h.ParseListQuery(c)
		data, err := h.dashboardService.GetChannelVideos(c.Context(), actorID, q.Page, q.Limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}
