// Package subscriptionsvc - service đăng ký kênh.
package subscriptionsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	models "video_tube/internal/api/subscription/models"
	usermodels "video_tube/internal/api/user/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến đăng ký kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscription]
	userService *basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscription](subscriptionCollection),
		userService:          basesvc.NewBaseServiceMongo[usermodels.User](userCollection),
	}, nil
}

// Toggle bật/tắt đăng ký của actor với một kênh.
// Không cho tự đăng ký kênh của chính mình. Kênh không tồn tại => NotFound.
// Hai request bật chạy song song: unique index trên cặp (subscriber, channel)
// đảm bảo chỉ một document được tạo, request còn lại nhận 409 Conflict.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID primitive.ObjectID, actorID primitive.ObjectID) (models.ToggleResult, error) {
	var zero models.ToggleResult

	if channelID == actorID {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			"Không thể đăng ký kênh của chính mình",
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{
		"subscriber": actorID,
		"channel":    channelID,
	}

	// Đã đăng ký => hủy đăng ký
	_, err := s.FindOneAndDelete(ctx, filter, nil)
	if err == nil {
		return models.ToggleResult{Subscribed: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	// Chưa đăng ký => kiểm tra kênh tồn tại rồi tạo
	if _, err := s.userService.FindOneById(ctx, channelID); err != nil {
		return zero, err
	}

	subscription := models.Subscription{
		Subscriber: actorID,
		Channel:    channelID,
	}
	if _, err := s.InsertOne(ctx, subscription); err != nil {
		if errors.Is(err, common.ErrDuplicate) || errors.Is(err, common.ErrMongoDuplicate) {
			return zero, common.ErrDuplicate
		}
		return zero, err
	}

	return models.ToggleResult{Subscribed: true}, nil
}

// ListSubscribers trả về danh sách người đã đăng ký một kênh, mới nhất trước.
// Kênh không tồn tại => NotFound.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	if _, err := s.userService.FindOneById(ctx, channelID); err != nil {
		return nil, err
	}

	pipeline := basesvc.NewPipelineBuilder().
		Match(bson.M{"channel": channelID}).
		Sort("createdAt", -1).
		LookupOwner("subscriber", "subscriberDetails").
		Project(bson.M{
			"subscriber":        1,
			"subscriberDetails": 1,
			"createdAt":         1,
		}).
		Build()

	return s.AggregatePaginated(ctx, pipeline, page, limit)
}

// ListSubscribedChannels trả về danh sách kênh mà một người dùng đã đăng ký, mới nhất trước.
// Người dùng không tồn tại => NotFound.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	if _, err := s.userService.FindOneById(ctx, subscriberID); err != nil {
		return nil, err
	}

	pipeline := basesvc.NewPipelineBuilder().
		Match(bson.M{"subscriber": subscriberID}).
		Sort("createdAt", -1).
		LookupOwner("channel", "channelDetails").
		Project(bson.M{
			"channel":        1,
			"channelDetails": 1,
			"createdAt":      1,
		}).
		Build()

	return s.AggregatePaginated(ctx, pipeline, page, limit)
}
