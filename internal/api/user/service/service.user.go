// Package usersvc - service người dùng (User).
package usersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "video_tube/internal/api/base/service"
	models "video_tube/internal/api/user/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// GetChannelProfile lấy thông tin công khai của một kênh theo userName,
// kèm subscribersCount và isSubscribed theo viewer hiện tại.
// Endpoint công khai nên không trả về email của chủ kênh.
func (s *UserService) GetChannelProfile(ctx context.Context, userName string, viewerID primitive.ObjectID) (bson.M, error) {
	pipeline := basesvc.NewPipelineBuilder().
		Match(bson.M{"userName": userName}).
		AddSubscriptionFields(viewerID).
		Project(bson.M{
			"userName":         1,
			"fullName":         1,
			"avatar":           1,
			"coverImage":       1,
			"subscribersCount": 1,
			"isSubscribed":     1,
			"createdAt":        1,
		}).
		Build()

	return s.AggregateOne(ctx, pipeline)
}

// GetWatchHistory trả về danh sách video trong lịch sử xem của người dùng,
// kèm thông tin kênh của từng video. Video đã xóa không xuất hiện trong kết quả.
func (s *UserService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	pipeline := basesvc.NewPipelineBuilder().
		Match(bson.M{"_id": userID}).
		AddStage(bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "watchHistory",
		}}}).
		AddStage(bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$watchHistory",
			"preserveNullAndEmptyArrays": false,
		}}}).
		AddStage(bson.D{{Key: "$replaceRoot", Value: bson.M{
			"newRoot": "$watchHistory",
		}}}).
		LookupOwner("owner", "ownerDetails").
		Build()

	return s.Aggregate(ctx, pipeline)
}
