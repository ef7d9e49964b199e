// Package videohdl - handler cho các route video.
package videohdl

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "video_tube/internal/api/base/handler"
	videodto "video_tube/internal/api/video/dto"
	videosvc "video_tube/internal/api/video/service"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/utility"
)

// VideoHandler xử lý các route video
type VideoHandler struct {
	*basehdl.BaseHandler
	videoService *videosvc.VideoService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, err
	}
	return &VideoHandler{
		BaseHandler:  &basehdl.BaseHandler{},
		videoService: videoService,
	}, nil
}

// saveTempUpload lưu file multipart vào thư mục tạm, trả về đường dẫn.
// Caller chịu trách nhiệm xóa file sau khi dùng xong.
func (h *VideoHandler) saveTempUpload(c fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	dst := filepath.Join(global.MongoDB_ServerConfig.UploadTempDir, uuid.NewString()+ext)
	if err := c.SaveFile(file, dst); err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không lưu được file upload: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}
	return dst, nil
}

// List trả về danh sách video đã publish, có phân trang/tìm kiếm/sắp xếp
// Query params: page, limit, query, sortBy, sortType, userId
func (h *VideoHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		q := h.ParseListQuery(c)

		filter := videodto.VideoListFilter{UserID: q.UserID}
		if err := h.ValidateInput(&filter); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ownerID := primitive.NilObjectID
		if q.UserID != "" {
			ownerID = utility.String2ObjectID(q.UserID)
		}

		params := videosvc.ListParams{
			Page:     q.Page,
			Limit:    q.Limit,
			Query:    q.Query,
			SortBy:   basehdl.NormalizeSortField(q.SortBy, videosvc.AllowedSortFields(), "createdAt"),
			SortType: q.SortType,
			OwnerID:  ownerID,
		}

		data, err := h.videoService.List(c.Context(), params, h.ViewerID(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetByID trả về chi tiết một video theo ID
func (h *VideoHandler) GetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ParamObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.videoService.GetByID(c.Context(), videoID, h.ViewerID(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Publish đăng video mới (multipart: title, description, videoFile, thumbnail)
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input videodto.VideoPublishInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoFile, err := c.FormFile("videoFile")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file 'videoFile' trong form data",
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		thumbnail, err := c.FormFile("thumbnail")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file 'thumbnail' trong form data",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		videoPath, err := h.saveTempUpload(c, videoFile)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer os.Remove(videoPath)

		thumbPath, err := h.saveTempUpload(c, thumbnail)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer os.Remove(thumbPath)

		data, err := h.videoService.Publish(c.Context(), actorID, input.Title, input.Description, videoPath, thumbPath)
		if err == nil {
			logger.LogAction("video.publish", "video", data.ID.Hex(), c, map[string]any{
				"title": input.Title,
			})
		}
		h.HandleCreated(c, data, err)
		return nil
	})
}

// Update cập nhật title/description và thumbnail (tùy chọn) của video
func (h *VideoHandler) Update(c fiber.Ctx) error {
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

		var input videodto.VideoUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Thumbnail là tùy chọn khi cập nhật
		thumbPath := ""
		if thumbnail, err := c.FormFile("thumbnail"); err == nil && thumbnail != nil {
			thumbPath, err = h.saveTempUpload(c, thumbnail)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			defer os.Remove(thumbPath)
		}

		data, err := h.videoService.Update(c.Context(), videoID, actorID, input.Title, input.Description, thumbPath)
		if err == nil {
			logger.LogAction("video.update", "video", videoID.Hex(), c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa video cùng dữ liệu liên quan
func (h *VideoHandler) Delete(c fiber.Ctx) error {
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

		err = h.videoService.Delete(c.Context(), videoID, actorID)
		if err == nil {
			logger.LogAction("video.delete", "video", videoID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// TogglePublish đảo trạng thái publish của video
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
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

		data, err := h.videoService.TogglePublish(c.Context(), videoID, actorID)
		if err == nil {
			logger.LogAction("video.toggle_publish", "video", videoID.Hex(), c, map[string]any{
				"isPublished": data.IsPublished,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
