// Package playlistsvc - service playlist: vòng đời playlist và quản lý video trong playlist.
package playlistsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	models "video_tube/internal/api/playlist/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// PlaylistService là cấu trúc chứa các phương thức liên quan đến playlist
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[models.Playlist]
	videoService *basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Playlist](playlistCollection),
		videoService:         basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
	}, nil
}

// findOwned lấy playlist và kiểm tra quyền sở hữu của actor.
// Playlist không tồn tại => NotFound (trước khi xét quyền).
func (s *PlaylistService) findOwned(ctx context.Context, playlistID primitive.ObjectID, actorID primitive.ObjectID) (models.Playlist, error) {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return playlist, err
	}
	if playlist.Owner != actorID {
		return playlist, common.ErrForbidden
	}
	return playlist, nil
}

// Create tạo playlist mới, danh sách video ban đầu rỗng
func (s *PlaylistService) Create(ctx context.Context, actorID primitive.ObjectID, name, description string) (models.Playlist, error) {
	playlist := models.Playlist{
		Name:        name,
		Description: description,
		Videos:      []primitive.ObjectID{},
		Owner:       actorID,
	}
	return s.InsertOne(ctx, playlist)
}

// ListByUser trả về danh sách playlist của một người dùng kèm số lượng video mỗi playlist
func (s *PlaylistService) ListByUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	pipeline := basesvc.NewPipelineBuilder().
		MatchOwner(userID).
		AddStage(bson.D{{Key: "$addFields", Value: bson.M{
			"videosCount": bson.M{"$size": "$videos"},
		}}}).
		Sort("createdAt", -1).
		Build()

	return s.AggregatePaginated(ctx, pipeline, page, limit)
}

// GetByID trả về chi tiết playlist kèm danh sách video được populate.
// Video chưa publish chỉ hiển thị khi viewer là chủ playlist.
func (s *PlaylistService) GetByID(ctx context.Context, playlistID primitive.ObjectID, viewerID primitive.ObjectID) (bson.M, error) {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	// Chủ playlist thấy cả video chưa publish của mình trong danh sách
	videoFilter := bson.M{"isPublished": true}
	if playlist.Owner == viewerID {
		videoFilter = bson.M{}
	}

	pipeline := basesvc.NewPipelineBuilder().
		Match(bson.M{"_id": playlistID}).
		AddStage(bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDetails",
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: videoFilter}},
			},
		}}}).
		LookupOwner("owner", "ownerDetails").
		AddStage(bson.D{{Key: "$addFields", Value: bson.M{
			"videosCount": bson.M{"$size": "$videoDetails"},
		}}}).
		Build()

	return s.AggregateOne(ctx, pipeline)
}

// Update cập nhật name/description của playlist. Chỉ chủ sở hữu được cập nhật.
func (s *PlaylistService) Update(ctx context.Context, playlistID primitive.ObjectID, actorID primitive.ObjectID, name, description string) (models.Playlist, error) {
	var zero models.Playlist

	if _, err := s.findOwned(ctx, playlistID, actorID); err != nil {
		return zero, err
	}

	set := map[string]interface{}{}
	if name != "" {
		set["name"] = name
	}
	if description != "" {
		set["description"] = description
	}
	if len(set) == 0 {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"Không có thông tin nào để cập nhật",
			common.StatusBadRequest,
			nil,
		)
	}

	return s.UpdateOne(ctx, bson.M{"_id": playlistID}, &basesvc.UpdateData{Set: set}, nil)
}

// Delete xóa playlist. Chỉ chủ sở hữu được xóa. Video trong playlist không bị ảnh hưởng.
func (s *PlaylistService) Delete(ctx context.Context, playlistID primitive.ObjectID, actorID primitive.ObjectID) error {
	if _, err := s.findOwned(ctx, playlistID, actorID); err != nil {
		return err
	}
	return s.DeleteOne(ctx, bson.M{"_id": playlistID})
}

// AddVideo thêm video vào playlist. Chỉ chủ playlist được thêm.
// Video phải tồn tại và viewer thấy được. Video đã có trong playlist => Conflict.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID primitive.ObjectID, actorID primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	playlist, err := s.findOwned(ctx, playlistID, actorID)
	if err != nil {
		return zero, err
	}

	video, err := s.videoService.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if !video.IsPublished && video.Owner != actorID {
		return zero, common.ErrNotFound
	}

	for _, existing := range playlist.Videos {
		if existing == videoID {
			return zero, common.NewError(
				common.ErrCodeDatabaseQuery,
				"Video đã có trong playlist",
				common.StatusConflict,
				nil,
			)
		}
	}

	updateData := &basesvc.UpdateData{
		AddToSet: map[string]interface{}{
			"videos": videoID,
		},
	}
	return s.UpdateOne(ctx, bson.M{"_id": playlistID}, updateData, nil)
}

// RemoveVideo gỡ video khỏi playlist. Chỉ chủ playlist được gỡ.
// Video không có trong playlist => NotFound.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID primitive.ObjectID, actorID primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	playlist, err := s.findOwned(ctx, playlistID, actorID)
	if err != nil {
		return zero, err
	}

	found := false
	for _, existing := range playlist.Videos {
		if existing == videoID {
			found = true
			break
		}
	}
	if !found {
		return zero, common.NewError(
			common.ErrCodeDatabaseQuery,
			"Video không có trong playlist",
			common.StatusNotFound,
			nil,
		)
	}

	updateData := &basesvc.UpdateData{
		Pull: map[string]interface{}{
			"videos": videoID,
		},
	}
	return s.UpdateOne(ctx, bson.M{"_id": playlistID}, updateData, nil)
}
