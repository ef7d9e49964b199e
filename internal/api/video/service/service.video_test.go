// Package videosvc - Test quyền truy cập và dọn dữ liệu video trên MongoDB mock.
package videosvc

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

func newMockVideoService(mt *mtest.T) *VideoService {
	mt.Helper()

	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Playlists = "playlists"

	_, _ = global.RegistryCollections.Register("videos", mt.DB.Collection("videos"))
	_, _ = global.RegistryCollections.Register("comments", mt.DB.Collection("comments"))
	_, _ = global.RegistryCollections.Register("likes", mt.DB.Collection("likes"))
	_, _ = global.RegistryCollections.Register("playlists", mt.DB.Collection("playlists"))

	svc, err := NewVideoService()
	if err != nil {
		mt.Fatalf("không khởi tạo được VideoService: %v", err)
	}
	return svc
}

func TestUpdate_ThuTuNotFoundTruocForbidden(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("video không tồn tại trả NotFound dù actor là ai", func(mt *mtest.T) {
		svc := newMockVideoService(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "videotube.videos", mtest.FirstBatch))

		_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "tiêu đề mới", "", "")
		if !errors.Is(err, common.ErrNotFound) {
			mt.Errorf("video không tồn tại phải trả NotFound, nhận được: %v", err)
		}
	})

	mt.Run("video của người khác trả Forbidden", func(mt *mtest.T) {
		svc := newMockVideoService(mt)
		videoID := primitive.NewObjectID()

		doc := bson.D{
			{Key: "_id", Value: videoID},
			{Key: "title", Value: "video test"},
			{Key: "isPublished", Value: true},
			{Key: "owner", Value: primitive.NewObjectID()},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "videotube.videos", mtest.FirstBatch, doc))

		_, err := svc.Update(context.Background(), videoID, primitive.NewObjectID(), "tiêu đề mới", "", "")
		if !errors.Is(err, common.ErrForbidden) {
			mt.Errorf("video của người khác phải trả Forbidden, nhận được: %v", err)
		}
	})
}

func TestGetByID_VideoChuaPublishAnVoiNguoiKhac(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pipeline không khớp trả NotFound", func(mt *mtest.T) {
		svc := newMockVideoService(mt)

		// Video chưa publish bị match isPublished/owner loại khỏi kết quả aggregate
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "videotube.videos", mtest.FirstBatch))

		_, err := svc.GetByID(context.Background(), primitive.NewObjectID(), primitive.NilObjectID)
		if !errors.Is(err, common.ErrNotFound) {
			mt.Errorf("video ẩn phải trả NotFound, nhận được: %v", err)
		}
	})
}

func TestCollectCommentIDs_GomIdCommentCuaVideo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("gom đủ id để dọn likes của comment", func(mt *mtest.T) {
		svc := newMockVideoService(mt)
		videoID := primitive.NewObjectID()
		commentA := primitive.NewObjectID()
		commentB := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "videotube.comments", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: commentA}},
			bson.D{{Key: "_id", Value: commentB}},
		))

		ids := svc.collectCommentIDs(context.Background(), videoID)
		if len(ids) != 2 {
			mt.Fatalf("phải gom được 2 id comment, nhận được %d", len(ids))
		}
		if ids[0] != commentA || ids[1] != commentB {
			mt.Errorf("id comment không khớp: %v", ids)
		}
	})

	mt.Run("video không có comment trả về danh sách rỗng", func(mt *mtest.T) {
		svc := newMockVideoService(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "videotube.comments", mtest.FirstBatch))

		ids := svc.collectCommentIDs(context.Background(), primitive.NewObjectID())
		if len(ids) != 0 {
			mt.Errorf("không có comment thì danh sách id phải rỗng, nhận được %v", ids)
		}
	})
}
