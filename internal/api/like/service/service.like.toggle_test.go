package likesvc

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

// newMockLikeService đăng ký các collection mock vào registry rồi khởi tạo service
func newMockLikeService(mt *mtest.T) *LikeService {
	mt.Helper()

	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Tweets = "tweets"

	_, _ = global.RegistryCollections.Register("likes", mt.DB.Collection("likes"))
	_, _ = global.RegistryCollections.Register("videos", mt.DB.Collection("videos"))
	_, _ = global.RegistryCollections.Register("comments", mt.DB.Collection("comments"))
	_, _ = global.RegistryCollections.Register("tweets", mt.DB.Collection("tweets"))

	svc, err := NewLikeService()
	if err != nil {
		mt.Fatalf("không khởi tạo được LikeService: %v", err)
	}
	return svc
}

// missFindAndModify giả lập findAndModify không khớp document nào
func missFindAndModify() bson.D {
	return bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}}
}

func videoDoc(id, owner primitive.ObjectID, published bool) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: "video test"},
		{Key: "isPublished", Value: published},
		{Key: "owner", Value: owner},
	}
}

func TestToggle_BatLanDau(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("bật like video đã publish", func(mt *mtest.T) {
		svc := newMockLikeService(mt)
		actorID := primitive.NewObjectID()
		videoID := primitive.NewObjectID()

		likeDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "likedBy", Value: actorID},
			{Key: "video", Value: videoID},
		}
		mt.AddMockResponses(
			missFindAndModify(),
			mtest.CreateCursorResponse(0, "videotube.videos", mtest.FirstBatch, videoDoc(videoID, primitive.NewObjectID(), true)),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "videotube.likes", mtest.FirstBatch, likeDoc),
		)

		result, err := svc.Toggle(context.Background(), TargetVideo, videoID, actorID)
		if err != nil {
			mt.Fatalf("bật like lần đầu không được trả lỗi: %v", err)
		}
		if !result.Liked {
			mt.Error("bật like lần đầu phải trả về liked=true")
		}
	})
}

func TestToggle_TatKhiDaThich(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("gỡ like đang tồn tại", func(mt *mtest.T) {
		svc := newMockLikeService(mt)
		actorID := primitive.NewObjectID()
		videoID := primitive.NewObjectID()

		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "likedBy", Value: actorID},
			{Key: "video", Value: videoID},
		}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: existing}})

		result, err := svc.Toggle(context.Background(), TargetVideo, videoID, actorID)
		if err != nil {
			mt.Fatalf("gỡ like không được trả lỗi: %v", err)
		}
		if result.Liked {
			mt.Error("gỡ like phải trả về liked=false")
		}
	})
}

func TestToggle_TrungUniqueIndexTraVeConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("hai request bật chạy song song", func(mt *mtest.T) {
		svc := newMockLikeService(mt)
		actorID := primitive.NewObjectID()
		videoID := primitive.NewObjectID()

		// Request thua cuộc: không thấy like để gỡ, video vẫn tồn tại,
		// nhưng insert đập vào unique index vì request kia đã ghi trước
		mt.AddMockResponses(
			missFindAndModify(),
			mtest.CreateCursorResponse(0, "videotube.videos", mtest.FirstBatch, videoDoc(videoID, primitive.NewObjectID(), true)),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		_, err := svc.Toggle(context.Background(), TargetVideo, videoID, actorID)
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

func TestToggle_VideoChuaPublishNguoiKhacNhanNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("video ẩn với người không phải chủ", func(mt *mtest.T) {
		svc := newMockLikeService(mt)
		actorID := primitive.NewObjectID()
		videoID := primitive.NewObjectID()

		mt.AddMockResponses(
			missFindAndModify(),
			mtest.CreateCursorResponse(0, "videotube.videos", mtest.FirstBatch, videoDoc(videoID, primitive.NewObjectID(), false)),
		)

		_, err := svc.Toggle(context.Background(), TargetVideo, videoID, actorID)
		if !errors.Is(err, common.ErrNotFound) {
			mt.Errorf("video chưa publish phải trả NotFound cho người khác, nhận được: %v", err)
		}
	})

	mt.Run("chủ video vẫn like được video chưa publish", func(mt *mtest.T) {
		svc := newMockLikeService(mt)
		actorID := primitive.NewObjectID()
		videoID := primitive.NewObjectID()

		likeDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "likedBy", Value: actorID},
			{Key: "video", Value: videoID},
		}
		mt.AddMockResponses(
			missFindAndModify(),
			mtest.CreateCursorResponse(0, "videotube.videos", mtest.FirstBatch, videoDoc(videoID, actorID, false)),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "videotube.likes", mtest.FirstBatch, likeDoc),
		)

		result, err := svc.Toggle(context.Background(), TargetVideo, videoID, actorID)
		if err != nil {
			mt.Fatalf("chủ video like video chưa publish không được trả lỗi: %v", err)
		}
		if !result.Liked {
			mt.Error("kết quả phải là liked=true")
		}
	})
}
