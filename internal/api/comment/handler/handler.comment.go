// Package commenthdl - handler cho các route bình luận.
package commenthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	commentdto "video_tube/internal/api/comment/dto"
	commentsvc "video_tube/internal/api/comment/service"
	"video_tube/internal/logger"
)

// CommentHandler xử lý các route bình luận
type CommentHandler struct {
	*basehdl.BaseHandler
	commentService *commentsvc.CommentService
}

// NewCommentHandler tạo mới CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, err
	}
	return &CommentHandler{
		BaseHandler:    &basehdl.BaseHandler{},
		commentService: commentService,
	}, nil
}

// ListByVideo trả về danh sách bình luận của một video, phân trang
func (h *CommentHandler) ListByVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ParamObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := h.ParseListQuery(c)
		data, err := h.commentService.ListByVideo(c.Context(), videoID, h.ViewerID(c), q.Page, q.Limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Add thêm bình luận vào video
func (h *CommentHandler) Add(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParamObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input commentdto.CommentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.commentService.Add(c.Context(), videoID, actorID, input.Content)
		if err == nil {
			logger.LogAction("comment.add", "comment", data.ID.Hex(), c, map[string]any{
				"videoId": videoID.Hex(),
			})
		}
		h.HandleCreated(c, data, err)
		return nil
	})
}

// Update sửa nội dung bình luận
func (h *CommentHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := h.ParamObjectID(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input commentdto.CommentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.commentService.Update(c.Context(), commentID, actorID, input.Content)
		if err == nil {
			logger.LogAction("comment.update", "comment", commentID.Hex(), c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa bình luận
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := h.ParamObjectID(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.commentService.Delete(c.Context(), commentID, actorID)
		if err == nil {
			logger.LogAction("comment.delete", "comment", commentID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
