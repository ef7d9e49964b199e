// Package dashboardsvc - service thống kê kênh cho chủ kênh.
package dashboardsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// ChannelStats số liệu tổng hợp của một kênh
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos" bson:"totalVideos"`
	TotalViews       int64 `json:"totalViews" bson:"totalViews"`
	TotalLikes       int64 `json:"totalLikes" bson:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers" bson:"totalSubscribers"`
}

// DashboardService là cấu trúc chứa các phương thức thống kê kênh
type DashboardService struct {
	videoService *basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &DashboardService{
		videoService: basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
	}, nil
}

// GetChannelStats trả về số liệu tổng hợp của kênh: tổng video, tổng lượt xem,
// tổng lượt thích trên các video và tổng người đăng ký.
// Tổng video/views/likes tính trên MỌI video của kênh, kể cả chưa publish,
// vì đây là dashboard của chính chủ kênh.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID primitive.ObjectID) (*ChannelStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": channelID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalVideos": bson.M{"$sum": 1},
			"totalViews":  bson.M{"$sum": "$views"},
			"totalLikes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
		}}},
	}

	stats := &ChannelStats{}

	results, err := s.videoService.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		raw, err := bson.Marshal(results[0])
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		if err := bson.Unmarshal(raw, stats); err != nil {
			return nil, common.ErrInvalidFormat
		}
	}

	// Kênh chưa có video vẫn có thể có người đăng ký
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, common.ErrConnection
	}
	totalSubscribers, err := subscriptionCollection.CountDocuments(ctx, bson.M{"channel": channelID})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	stats.TotalSubscribers = totalSubscribers

	return stats, nil
}

// GetChannelVideos trả về toàn bộ video của kênh (kể cả chưa publish) kèm likesCount,
// mới nhất trước, có phân trang.
func (s *DashboardService) GetChannelVideos(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	pipeline := basesvc.NewPipelineBuilder().
		MatchOwner(channelID).
		AddLikeFields("video", channelID).
		Sort("createdAt", -1).
		Build()

	return s.videoService.AggregatePaginated(ctx, pipeline, page, limit)
}
