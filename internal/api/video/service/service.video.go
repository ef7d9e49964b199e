// Package videosvc - service video: danh sách, chi tiết, đăng, cập nhật, xóa.
package videosvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	models "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/utility"
)

// Các field được phép sort trong danh sách video
var allowedSortFields = []string{"createdAt", "views", "duration", "title"}

// ListParams tham số danh sách video
type ListParams struct {
	Page     int64
	Limit    int64
	Query    string // Tìm kiếm trên title + description
	SortBy   string
	SortType int
	OwnerID  primitive.ObjectID // Lọc theo kênh, NilObjectID = tất cả
}

// VideoService là cấu trúc chứa các phương thức liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.Video]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](videoCollection),
	}, nil
}

// AllowedSortFields trả về whitelist field sort cho handler
func AllowedSortFields() []string {
	return allowedSortFields
}

// List trả về danh sách video đã publish, phân trang.
// viewerID khác rỗng => thấy thêm video chưa publish của chính mình.
func (s *VideoService) List(ctx context.Context, params ListParams, viewerID primitive.ObjectID) (*basemodels.PaginateResult[bson.M], error) {
	builder := basesvc.NewPipelineBuilder().
		MatchPublished(viewerID)

	if params.OwnerID != primitive.NilObjectID {
		builder.MatchOwner(params.OwnerID)
	}

	builder.
		Search(params.Query, "title", "description").
		LookupOwner("owner", "ownerDetails").
		Sort(params.SortBy, params.SortType)

	return s.AggregatePaginated(ctx, builder.Build(), params.Page, params.Limit)
}

// GetByID trả về chi tiết một video kèm thông tin kênh, likesCount, isLiked.
// Video chưa publish chỉ chủ sở hữu thấy được, người khác nhận NotFound.
// Mỗi lần xem thành công: tăng views và ghi vào watchHistory của viewer (không chặn response).
func (s *VideoService) GetByID(ctx context.Context, videoID primitive.ObjectID, viewerID primitive.ObjectID) (bson.M, error) {
	builder := basesvc.NewPipelineBuilder().
		Match(bson.M{"_id": videoID})

	// Ẩn video chưa publish với người không phải chủ sở hữu
	if viewerID == primitive.NilObjectID {
		builder.Match(bson.M{"isPublished": true})
	} else {
		builder.Match(bson.M{"$or": []bson.M{
			{"isPublished": true},
			{"owner": viewerID},
		}})
	}

	builder.
		AddLikeFields("video", viewerID).
		LookupOwner("owner", "ownerDetails")

	video, err := s.AggregateOne(ctx, builder.Build())
	if err != nil {
		return nil, err
	}

	// Tăng views + ghi watchHistory sau khi đã trả được dữ liệu, không chặn response
	go utility.GoProtect(func() {
		s.recordView(videoID, viewerID)
	})

	return video, nil
}

// recordView tăng views của video và thêm video vào watchHistory của viewer
func (s *VideoService) recordView(videoID primitive.ObjectID, viewerID primitive.ObjectID) {
	ctx := context.Background()

	_, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": videoID},
		bson.M{"$inc": bson.M{"views": 1}},
	)
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"videoId": videoID.Hex(),
			"error":   err.Error(),
		}).Warn("Không tăng được lượt xem video")
	}

	if viewerID == primitive.NilObjectID {
		return
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return
	}
	_, err = userCollection.UpdateOne(ctx,
		bson.M{"_id": viewerID},
		bson.M{"$addToSet": bson.M{"watchHistory": videoID}},
	)
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"videoId": videoID.Hex(),
			"userId":  viewerID.Hex(),
			"error":   err.Error(),
		}).Warn("Không ghi được watchHistory")
	}
}

// Publish upload video + thumbnail lên kho media rồi tạo document video.
// Upload thất bại => hủy thao tác, không tạo document.
func (s *VideoService) Publish(ctx context.Context, ownerID primitive.ObjectID, title, description, videoFilePath, thumbnailPath string) (models.Video, error) {
	var zero models.Video

	videoResult, err := global.MediaStorage.Store(ctx, videoFilePath, true)
	if err != nil {
		return zero, err
	}

	thumbResult, err := global.MediaStorage.Store(ctx, thumbnailPath, false)
	if err != nil {
		// Video đã lên kho nhưng thumbnail thất bại => dọn lại file video
		global.MediaStorage.Remove(ctx, videoResult.URL)
		return zero, err
	}

	video := models.Video{
		VideoFile:   videoResult.URL,
		Thumbnail:   thumbResult.URL,
		Title:       title,
		Description: description,
		Duration:    videoResult.Duration,
		Views:       0,
		IsPublished: true,
		Owner:       ownerID,
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		// Insert thất bại => dọn các file đã upload
		global.MediaStorage.Remove(ctx, videoResult.URL)
		global.MediaStorage.Remove(ctx, thumbResult.URL)
		return zero, err
	}

	return created, nil
}

// Update cập nhật title/description/thumbnail của video.
// Chỉ chủ sở hữu được cập nhật. thumbnailPath rỗng => giữ thumbnail cũ.
func (s *VideoService) Update(ctx context.Context, videoID primitive.ObjectID, actorID primitive.ObjectID, title, description, thumbnailPath string) (models.Video, error) {
	var zero models.Video

	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if video.Owner != actorID {
		return zero, common.ErrForbidden
	}

	set := map[string]interface{}{}
	if title != "" {
		set["title"] = title
	}
	if description != "" {
		set["description"] = description
	}

	oldThumbnail := ""
	if thumbnailPath != "" {
		thumbResult, err := global.MediaStorage.Store(ctx, thumbnailPath, false)
		if err != nil {
			return zero, err
		}
		set["thumbnail"] = thumbResult.URL
		oldThumbnail = video.Thumbnail
	}

	if len(set) == 0 {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"Không có thông tin nào để cập nhật",
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": videoID}, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return zero, err
	}

	// Thumbnail cũ không còn được tham chiếu => dọn best-effort
	if oldThumbnail != "" {
		global.MediaStorage.Remove(ctx, oldThumbnail)
	}

	return updated, nil
}

// Delete xóa video cùng dữ liệu liên quan: comments, likes, tham chiếu trong playlist.
// Chỉ chủ sở hữu được xóa. File media được dọn best-effort sau khi xóa document.
func (s *VideoService) Delete(ctx context.Context, videoID primitive.ObjectID, actorID primitive.ObjectID) error {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return err
	}
	if video.Owner != actorID {
		return common.ErrForbidden
	}

	if err := s.DeleteOne(ctx, bson.M{"_id": videoID}); err != nil {
		return err
	}

	// Dọn dữ liệu liên quan, lỗi từng phần chỉ log lại
	s.cascadeCleanup(ctx, videoID)

	// Dọn file media best-effort
	global.MediaStorage.Remove(ctx, video.VideoFile)
	global.MediaStorage.Remove(ctx, video.Thumbnail)

	return nil
}

// cascadeCleanup xóa comments/likes của video và gỡ video khỏi mọi playlist.
// Likes trên các comment của video cũng bị xóa theo, nên phải gom id comment
// trước khi xóa collection comments.
func (s *VideoService) cascadeCleanup(ctx context.Context, videoID primitive.ObjectID) {
	commentIDs := s.collectCommentIDs(ctx, videoID)

	likeFilter := bson.M{"video": videoID}
	if len(commentIDs) > 0 {
		likeFilter = bson.M{"$or": []bson.M{
			{"video": videoID},
			{"comment": bson.M{"$in": commentIDs}},
		}}
	}

	cleanups := []struct {
		colName string
		action  func(col *mongo.Collection) error
	}{
		{global.MongoDB_ColNames.Likes, func(col *mongo.Collection) error {
			_, err := col.DeleteMany(ctx, likeFilter)
			return err
		}},
		{global.MongoDB_ColNames.Comments, func(col *mongo.Collection) error {
			_, err := col.DeleteMany(ctx, bson.M{"video": videoID})
			return err
		}},
		{global.MongoDB_ColNames.Playlists, func(col *mongo.Collection) error {
			_, err := col.UpdateMany(ctx, bson.M{"videos": videoID}, bson.M{"$pull": bson.M{"videos": videoID}})
			return err
		}},
	}

	for _, cleanup := range cleanups {
		col, exist := global.RegistryCollections.Get(cleanup.colName)
		if !exist {
			continue
		}
		if err := cleanup.action(col); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"videoId":    videoID.Hex(),
				"collection": cleanup.colName,
				"error":      err.Error(),
			}).Error("Lỗi dọn dữ liệu liên quan khi xóa video")
		}
	}
}

// collectCommentIDs gom id các comment thuộc video để dọn likes kèm theo
func (s *VideoService) collectCommentIDs(ctx context.Context, videoID primitive.ObjectID) []primitive.ObjectID {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil
	}

	cursor, err := col.Find(ctx, bson.M{"video": videoID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"videoId": videoID.Hex(),
			"error":   err.Error(),
		}).Error("Không gom được danh sách comment của video")
		return nil
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"videoId": videoID.Hex(),
			"error":   err.Error(),
		}).Error("Không gom được danh sách comment của video")
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids
}

// TogglePublish đảo trạng thái publish của video. Chỉ chủ sở hữu được thao tác.
func (s *VideoService) TogglePublish(ctx context.Context, videoID primitive.ObjectID, actorID primitive.ObjectID) (models.Video, error) {
	var zero models.Video

	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if video.Owner != actorID {
		return zero, common.ErrForbidden
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isPublished": !video.IsPublished,
		},
	}
	return s.UpdateOne(ctx, bson.M{"_id": videoID}, updateData, nil)
}
