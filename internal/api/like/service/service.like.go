// Package likesvc - service lượt thích trên video/comment/tweet.
package likesvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	models "video_tube/internal/api/like/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// Các loại đích hợp lệ của một lượt thích
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// LikeService là cấu trúc chứa các phương thức liên quan đến lượt thích
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[models.Like]
	videoService *basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewLikeService tạo mới LikeService
func NewLikeService() (*LikeService, error) {
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Like](likeCollection),
		videoService:         basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
	}, nil
}

// targetCollectionName map loại đích sang tên collection chứa đối tượng đích
func targetCollectionName(target string) (string, error) {
	switch target {
	case TargetVideo:
		return global.MongoDB_ColNames.Videos, nil
	case TargetComment:
		return global.MongoDB_ColNames.Comments, nil
	case TargetTweet:
		return global.MongoDB_ColNames.Tweets, nil
	default:
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Loại đối tượng '%s' không hợp lệ", target),
			common.StatusBadRequest,
			nil,
		)
	}
}

// ensureTargetExists kiểm tra đối tượng đích tồn tại.
// Với video: video chưa publish chỉ chủ sở hữu like được, người khác nhận NotFound.
func (s *LikeService) ensureTargetExists(ctx context.Context, target string, targetID primitive.ObjectID, actorID primitive.ObjectID) error {
	if target == TargetVideo {
		video, err := s.videoService.FindOneById(ctx, targetID)
		if err != nil {
			return err
		}
		if !video.IsPublished && video.Owner != actorID {
			return common.ErrNotFound
		}
		return nil
	}

	colName, err := targetCollectionName(target)
	if err != nil {
		return err
	}
	col, exist := global.RegistryCollections.Get(colName)
	if !exist {
		return common.ErrConnection
	}
	count, err := col.CountDocuments(ctx, bson.M{"_id": targetID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Toggle bật/tắt lượt thích của actor trên một đối tượng.
// Thao tác tắt dùng FindOneAndDelete (atomic); thao tác bật dựa vào
// unique partial index của collection likes: hai request bật chạy song song
// thì một request nhận duplicate key và bị trả về 409 Conflict.
func (s *LikeService) Toggle(ctx context.Context, target string, targetID primitive.ObjectID, actorID primitive.ObjectID) (models.ToggleResult, error) {
	var zero models.ToggleResult

	if _, err := targetCollectionName(target); err != nil {
		return zero, err
	}

	filter := bson.M{
		"likedBy": actorID,
		target:    targetID,
	}

	// Đã thích => gỡ lượt thích
	_, err := s.FindOneAndDelete(ctx, filter, nil)
	if err == nil {
		return models.ToggleResult{Liked: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	// Chưa thích => kiểm tra đích rồi thêm lượt thích
	if err := s.ensureTargetExists(ctx, target, targetID, actorID); err != nil {
		return zero, err
	}

	like := models.Like{LikedBy: actorID}
	switch target {
	case TargetVideo:
		like.Video = targetID
	case TargetComment:
		like.Comment = targetID
	case TargetTweet:
		like.Tweet = targetID
	}

	if _, err := s.InsertOne(ctx, like); err != nil {
		// Request song song đã thích trước => xung đột unique index
		if errors.Is(err, common.ErrDuplicate) || errors.Is(err, common.ErrMongoDuplicate) {
			return zero, common.ErrDuplicate
		}
		return zero, err
	}

	return models.ToggleResult{Liked: true}, nil
}

// GetLikedVideos trả về danh sách video mà actor đã thích, lượt thích mới nhất trước.
// Video đã xóa hoặc đã chuyển về chưa publish không xuất hiện trong kết quả.
func (s *LikeService) GetLikedVideos(ctx context.Context, actorID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	pipeline := basesvc.NewPipelineBuilder().
		Match(bson.M{
			"likedBy": actorID,
			"video":   bson.M{"$exists": true},
		}).
		Sort("createdAt", -1).
		AddStage(bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "videoDetails",
		}}}).
		AddStage(bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$videoDetails",
			"preserveNullAndEmptyArrays": false,
		}}}).
		Match(bson.M{"videoDetails.isPublished": true}).
		AddStage(bson.D{{Key: "$replaceRoot", Value: bson.M{
			"newRoot": "$videoDetails",
		}}}).
		LookupOwner("owner", "ownerDetails").
		Build()

	return s.AggregatePaginated(ctx, pipeline, page, limit)
}

// CountByTarget đếm số lượt thích của một đối tượng
func (s *LikeService) CountByTarget(ctx context.Context, target string, targetID primitive.ObjectID) (int64, error) {
	if _, err := targetCollectionName(target); err != nil {
		return 0, err
	}
	return s.CountDocuments(ctx, bson.M{target: targetID})
}
