// Package commentsvc - service bình luận trên video.
package commentsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	models "video_tube/internal/api/comment/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
	videoService *basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](commentCollection),
		videoService:         basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
	}, nil
}

// ensureVideoVisible kiểm tra video tồn tại và viewer được phép thấy nó.
// Video không tồn tại hoặc chưa publish với người ngoài => NotFound.
func (s *CommentService) ensureVideoVisible(ctx context.Context, videoID primitive.ObjectID, viewerID primitive.ObjectID) error {
	video, err := s.videoService.FindOneById(ctx, videoID)
	if err != nil {
		return err
	}
	if !video.IsPublished && video.Owner != viewerID {
		return common.ErrNotFound
	}
	return nil
}

// ListByVideo trả về danh sách bình luận của một video, mới nhất trước,
// kèm thông tin người bình luận + likesCount + isLiked theo viewer.
func (s *CommentService) ListByVideo(ctx context.Context, videoID primitive.ObjectID, viewerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	if err := s.ensureVideoVisible(ctx, videoID, viewerID); err != nil {
		return nil, err
	}

	pipeline := basesvc.NewPipelineBuilder().
		Match(bson.M{"video": videoID}).
		LookupOwner("owner", "ownerDetails").
		AddLikeFields("comment", viewerID).
		Sort("createdAt", -1).
		Build()

	return s.AggregatePaginated(ctx, pipeline, page, limit)
}

// Add thêm bình luận vào một video. Video phải tồn tại và viewer thấy được.
func (s *CommentService) Add(ctx context.Context, videoID primitive.ObjectID, actorID primitive.ObjectID, content string) (models.Comment, error) {
	var zero models.Comment

	if err := s.ensureVideoVisible(ctx, videoID, actorID); err != nil {
		return zero, err
	}

	comment := models.Comment{
		Content: content,
		Video:   videoID,
		Owner:   actorID,
	}
	return s.InsertOne(ctx, comment)
}

// Update sửa nội dung bình luận. Chỉ chủ sở hữu được sửa.
func (s *CommentService) Update(ctx context.Context, commentID primitive.ObjectID, actorID primitive.ObjectID, content string) (models.Comment, error) {
	var zero models.Comment

	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return zero, err
	}
	if comment.Owner != actorID {
		return zero, common.ErrForbidden
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"content": content,
		},
	}
	return s.UpdateOne(ctx, bson.M{"_id": commentID}, updateData, nil)
}

// Delete xóa bình luận cùng các lượt thích của nó. Chỉ chủ sở hữu được xóa.
func (s *CommentService) Delete(ctx context.Context, commentID primitive.ObjectID, actorID primitive.ObjectID) error {
	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.Owner != actorID {
		return common.ErrForbidden
	}

	if err := s.DeleteOne(ctx, bson.M{"_id": commentID}); err != nil {
		return err
	}

	// Dọn lượt thích của bình luận, lỗi chỉ log lại
	if likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes); exist {
		if _, err := likeCollection.DeleteMany(ctx, bson.M{"comment": commentID}); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"commentId": commentID.Hex(),
				"error":     err.Error(),
			}).Error("Lỗi dọn lượt thích khi xóa bình luận")
		}
	}

	return nil
}
