// Package playlisthdl - handler cho các route playlist.
package playlisthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	playlistdto "video_tube/internal/api/playlist/dto"
	playlistsvc "video_tube/internal/api/playlist/service"
	"video_tube/internal/logger"
)

// PlaylistHandler xử lý các route playlist
type PlaylistHandler struct {
	*basehdl.BaseHandler
	playlistService *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo mới PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	playlistService, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, err
	}
	return &PlaylistHandler{
		BaseHandler:     &basehdl.BaseHandler{},
		playlistService: playlistService,
	}, nil
}

// Create tạo playlist mới
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.playlistService.Create(c.Context(), actorID, input.Name, input.Description)
		if err == nil {
			logger.LogAction("playlist.create", "playlist", data.ID.Hex(), c, map[string]any{
				"name": input.Name,
			})
		}
		h.HandleCreated(c, data, err)
		return nil
	})
}

// ListByUser trả về danh sách playlist của một người dùng
func (h *PlaylistHandler) ListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ParamObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := h.ParseListQuery(c)
		data, err := h.playlistService.ListByUser(c.Context(), userID, q.Page, q.Limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetByID trả về chi tiết playlist kèm danh sách video
func (h *PlaylistHandler) GetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.playlistService.GetByID(c.Context(), playlistID, h.ViewerID(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật name/description của playlist
func (h *PlaylistHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.playlistService.Update(c.Context(), playlistID, actorID, input.Name, input.Description)
		if err == nil {
			logger.LogAction("playlist.update", "playlist", playlistID.Hex(), c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa playlist
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.playlistService.Delete(c.Context(), playlistID, actorID)
		if err == nil {
			logger.LogAction("playlist.delete", "playlist", playlistID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// AddVideo thêm video vào playlist
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := h.ParamObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.playlistService.AddVideo(c.Context(), playlistID, videoID, actorID)
		if err == nil {
			logger.LogAction("playlist.add_video", "playlist", playlistID.Hex(), c, map[string]any{
				"videoId": videoID.Hex(),
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// RemoveVideo gỡ video khỏi playlist
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := h.ParamObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.playlistService.RemoveVideo(c.Context(), playlistID, videoID, actorID)
		if err == nil {
			logger.LogAction("playlist.remove_video", "playlist", playlistID.Hex(), c, map[string]any{
				"videoId": videoID.Hex(),
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
