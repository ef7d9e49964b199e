// Package subscriptionsvc - Test toggle đăng ký kênh trên MongoDB mock.
package subscriptionsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"video_tube/internal/common"
	"video_tube/internal/global"
)

func newMockSubscriptionService(mt *mtest.T) *SubscriptionService {
	mt.Helper()

	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Users = "users"

	_, _ = global.RegistryCollections.Register("subscriptions", mt.DB.Collection("subscriptions"))
	_, _ = global.RegistryCollections.Register("users", mt.DB.Collection("users"))

	svc, err := NewSubscriptionService()
	if err != nil {
		mt.Fatalf("không khởi tạo được SubscriptionService: %v", err)
	}
	return svc
}

func TestToggle_TuDangKyChinhMinh(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("chặn tự đăng ký", func(mt *mtest.T) {
		svc := newMockSubscriptionService(mt)
		actorID := primitive.NewObjectID()

		_, err := svc.Toggle(context.Background(), actorID, actorID)
		if err == nil {
			mt.Fatal("tự đăng ký kênh của chính mình phải bị từ chối")
		}
		var appErr *common.Error
		if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusBadRequest {
			mt.Errorf("lỗi phải là 400, nhận được: %v", err)
		}
	})
}

func TestToggle_HuyDangKyKhiDaDangKy(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("gỡ đăng ký đang tồn tại", func(mt *mtest.T) {
		svc := newMockSubscriptionService(mt)
		actorID := primitive.NewObjectID()
		channelID := primitive.NewObjectID()

		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "subscriber", Value: actorID},
			{Key: "channel", Value: channelID},
		}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: existing}})

		result, err := svc.Toggle(context.Background(), channelID, actorID)
		if err != nil {
			mt.Fatalf("hủy đăng ký không được trả lỗi: %v", err)
		}
		if result.Subscribed {
			mt.Error("hủy đăng ký phải trả về subscribed=false")
		}
	})
}

func TestToggle_DangKyTrungUniqueIndexTraVeConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("hai request đăng ký chạy song song", func(mt *mtest.T) {
		svc := newMockSubscriptionService(mt)
		actorID := primitive.NewObjectID()
		channelID := primitive.NewObjectID()

		channelDoc := bson.D{
			{Key: "_id", Value: channelID},
			{Key: "userName", Value: "kenh-test"},
		}
		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}},
			mtest.CreateCursorResponse(0, "videotube.users", mtest.FirstBatch, channelDoc),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		_, err := svc.Toggle(context.Background(), channelID, actorID)
		if err == nil {
			mt.Fatal("insert trùng unique index phải trả lỗi, không được coi là thành công")
		}
		if !errors.Is(err, common.ErrDuplicate) {
			mt.Errorf("lỗi phải là ErrDuplicate, nhận được: %v", err)
		}
		var appErr *common.Error
		if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusConflict {
			mt.Errorf("status phải là 409 Conflict, nhận được: %v", err)
		}
	})
}

func TestToggle_KenhKhongTonTai(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("đăng ký kênh không tồn tại", func(mt *mtest.T) {
		svc := newMockSubscriptionService(mt)
		actorID := primitive.NewObjectID()
		channelID := primitive.NewObjectID()

		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}},
			mtest.CreateCursorResponse(0, "videotube.users", mtest.FirstBatch),
		)

		_, err := svc.Toggle(context.Background(), channelID, actorID)
		if !errors.Is(err, common.ErrNotFound) {
			mt.Errorf("kênh không tồn tại phải trả NotFound, nhận được: %v", err)
		}
	})
}
