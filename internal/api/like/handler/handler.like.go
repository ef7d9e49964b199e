// Package likehdl - handler cho các route lượt thích.
package likehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	likesvc "video_tube/internal/api/like/service"
	"video_tube/internal/logger"
)

// LikeHandler xử lý các route lượt thích
type LikeHandler struct {
	*basehdl.BaseHandler
	likeService *likesvc.LikeService
}

// NewLikeHandler tạo mới LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	likeService, err := likesvc.NewLikeService()
	if err != nil {
		return nil, err
	}
	return &LikeHandler{
		BaseHandler: &basehdl.BaseHandler{},
		likeService: likeService,
	}, nil
}

// toggle xử lý chung cho các route toggle theo loại đích
func (h *LikeHandler) toggle(c fiber.Ctx, target string, paramName string) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		targetID, err := h.ParamObjectID(c, paramName)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.likeService.Toggle(c.Context(), target, targetID, actorID)
		if err == nil {
			logger.LogAction("like.toggle", target, targetID.Hex(), c, map[string]any{
				"liked": data.Liked,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ToggleVideoLike bật/tắt lượt thích trên video
func (h *LikeHandler) ToggleVideoLike(c fiber.Ctx) error {
	return h.toggle(c, likesvc.TargetVideo, "videoId")
}

// ToggleCommentLike bật/tắt lượt thích trên bình luận
func (h *LikeHandler) ToggleCommentLike(c fiber.Ctx) error {
	return h.toggle(c, likesvc.TargetComment, "commentId")
}

// ToggleTweetLike bật/tắt lượt thích trên tweet
func (h *LikeHandler) ToggleTweetLike(c fiber.Ctx) error {
	return h.toggle(c, likesvc.TargetTweet, "tweetId")
}

// GetLikedVideos trả về danh sách video actor đã thích, phân trang
func (h *LikeHandler) GetLikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := h.ParseListQuery(c)
		data, err := h.likeService.GetLikedVideos(c.Context(), actorID, q.Page, q.Limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}
