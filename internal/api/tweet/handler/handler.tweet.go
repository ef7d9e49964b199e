// Package tweethdl - handler cho các route tweet.
package tweethdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	tweetdto "video_tube/internal/api/tweet/dto"
	tweetsvc "video_tube/internal/api/tweet/service"
	"video_tube/internal/logger"
)

// TweetHandler xử lý các route tweet
type TweetHandler struct {
	*basehdl.BaseHandler
	tweetService *tweetsvc.TweetService
}

// NewTweetHandler tạo mới TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	tweetService, err := tweetsvc.NewTweetService()
	if err != nil {
		return nil, err
	}
	return &TweetHandler{
		BaseHandler:  &basehdl.BaseHandler{},
		tweetService: tweetService,
	}, nil
}

// Create tạo tweet mới
func (h *TweetHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input tweetdto.TweetCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.tweetService.Create(c.Context(), actorID, input.Content)
		if err == nil {
			logger.LogAction("tweet.create", "tweet", data.ID.Hex(), c, nil)
		}
		h.HandleCreated(c, data, err)
		return nil
	})
}

// ListByUser trả về danh sách tweet của một kênh, phân trang
func (h *TweetHandler) ListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ParamObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := h.ParseListQuery(c)
		data, err := h.tweetService.ListByUser(c.Context(), userID, h.ViewerID(c), q.Page, q.Limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update sửa nội dung tweet
func (h *TweetHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweetID, err := h.ParamObjectID(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input tweetdto.TweetUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.tweetService.Update(c.Context(), tweetID, actorID, input.Content)
		if err == nil {
			logger.LogAction("tweet.update", "tweet", tweetID.Hex(), c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa tweet
func (h *TweetHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweetID, err := h.ParamObjectID(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.tweetService.Delete(c.Context(), tweetID, actorID)
		if err == nil {
			logger.LogAction("tweet.delete", "tweet", tweetID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
