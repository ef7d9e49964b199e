// Package likesvc - Test map loại đích của lượt thích sang collection.
package likesvc

import (
	"errors"
	"testing"

	"video_tube/internal/common"
	"video_tube/internal/global"
)

func TestTargetCollectionName(t *testing.T) {
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Tweets = "tweets"

	cases := []struct {
		target string
		want   string
	}{
		{TargetVideo, "videos"},
		{TargetComment, "comments"},
		{TargetTweet, "tweets"},
	}
	for _, tc := range cases {
		got, err := targetCollectionName(tc.target)
		if err != nil {
			t.Errorf("target %s không được trả lỗi: %v", tc.target, err)
		}
		if got != tc.want {
			t.Errorf("target %s phải map sang %s, nhận được %s", tc.target, tc.want, got)
		}
	}
}

func TestTargetCollectionName_KhongHopLe(t *testing.T) {
	_, err := targetCollectionName("playlist")
	if err == nil {
		t.Fatal("loại đích không hỗ trợ phải trả lỗi")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("lỗi phải là 400, nhận được: %v", err)
	}
}
