// Package playlistsvc - Test quản lý video trong playlist trên MongoDB mock.
package playlistsvc

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

func newMockPlaylistService(mt *mtest.T) *PlaylistService {
	mt.Helper()

	global.MongoDB_ColNames.Playlists = "playlists"
	global.MongoDB_ColNames.Videos = "videos"

	_, _ = global.RegistryCollections.Register("playlists", mt.DB.Collection("playlists"))
	_, _ = global.RegistryCollections.Register("videos", mt.DB.Collection("videos"))

	svc, err := NewPlaylistService()
	if err != nil {
		mt.Fatalf("không khởi tạo được PlaylistService: %v", err)
	}
	return svc
}

func playlistDoc(id, owner primitive.ObjectID, videos []primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "playlist test"},
		{Key: "videos", Value: videos},
		{Key: "owner", Value: owner},
	}
}

func TestAddVideo_VideoDaCoTrongPlaylist(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("thêm lần hai trả về Conflict", func(mt *mtest.T) {
		svc := newMockPlaylistService(mt)
		actorID := primitive.NewObjectID()
		playlistID := primitive.NewObjectID()
		videoID := primitive.NewObjectID()

		videoDoc := bson.D{
			{Key: "_id", Value: videoID},
			{Key: "isPublished", Value: true},
			{Key: "owner", Value: primitive.NewObjectID()},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "videotube.playlists", mtest.FirstBatch,
				playlistDoc(playlistID, actorID, []primitive.ObjectID{videoID})),
			mtest.CreateCursorResponse(0, "videotube.videos", mtest.FirstBatch, videoDoc),
		)

		_, err := svc.AddVideo(context.Background(), playlistID, videoID, actorID)
		if err == nil {
			mt.Fatal("thêm video đã có trong playlist phải trả lỗi")
		}
		var appErr *common.Error
		if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusConflict {
			mt.Errorf("status phải là 409 Conflict, nhận được: %v", err)
		}
	})
}

func TestRemoveVideo_VideoKhongCoTrongPlaylist(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("gỡ video không phải thành viên trả về NotFound", func(mt *mtest.T) {
		svc := newMockPlaylistService(mt)
		actorID := primitive.NewObjectID()
		playlistID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "videotube.playlists", mtest.FirstBatch,
				playlistDoc(playlistID, actorID, []primitive.ObjectID{})),
		)

		_, err := svc.RemoveVideo(context.Background(), playlistID, primitive.NewObjectID(), actorID)
		if err == nil {
			mt.Fatal("gỡ video không có trong playlist phải trả lỗi")
		}
		var appErr *common.Error
		if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusNotFound {
			mt.Errorf("status phải là 404 NotFound, nhận được: %v", err)
		}
	})
}

func TestFindOwned_ThuTuNotFoundTruocForbidden(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("playlist không tồn tại trả NotFound dù actor là ai", func(mt *mtest.T) {
		svc := newMockPlaylistService(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "videotube.playlists", mtest.FirstBatch))

		err := svc.Delete(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		if !errors.Is(err, common.ErrNotFound) {
			mt.Errorf("playlist không tồn tại phải trả NotFound, nhận được: %v", err)
		}
	})

	mt.Run("playlist của người khác trả Forbidden", func(mt *mtest.T) {
		svc := newMockPlaylistService(mt)
		playlistID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "videotube.playlists", mtest.FirstBatch,
				playlistDoc(playlistID, primitive.NewObjectID(), []primitive.ObjectID{})),
		)

		err := svc.Delete(context.Background(), playlistID, primitive.NewObjectID())
		if !errors.Is(err, common.ErrForbidden) {
			mt.Errorf("playlist của người khác phải trả Forbidden, nhận được: %v", err)
		}
	})
}
