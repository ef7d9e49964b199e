// Package basehdl - Test parse tham số danh sách, params và identity của request.
package basehdl

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"video_tube/internal/common"
)

// listQueryFromRequest chạy ParseListQuery qua một route stub và trả về kết quả
func listQueryFromRequest(t *testing.T, target string) ListQuery {
	t.Helper()
	h := &BaseHandler{}
	var got ListQuery

	app := fiber.New()
	app.Get("/list", func(c fiber.Ctx) error {
		got = h.ParseListQuery(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestParseListQuery_MacDinh(t *testing.T) {
	q := listQueryFromRequest(t, "/list")
	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("mặc định phải là page=1 limit=10, nhận được page=%d limit=%d", q.Page, q.Limit)
	}
	if q.SortType != -1 {
		t.Errorf("mặc định phải sort giảm dần, nhận được %d", q.SortType)
	}
}

func TestParseListQuery_GiaTriKhongHopLe(t *testing.T) {
	q := listQueryFromRequest(t, "/list?page=-5&limit=abc")
	if q.Page != 1 {
		t.Errorf("page âm phải về 1, nhận được %d", q.Page)
	}
	if q.Limit != 10 {
		t.Errorf("limit không phải số phải về 10, nhận được %d", q.Limit)
	}
}

func TestParseListQuery_ChanLimitQuaLon(t *testing.T) {
	q := listQueryFromRequest(t, "/list?limit=1000")
	if q.Limit != 100 {
		t.Errorf("limit phải bị chặn ở 100, nhận được %d", q.Limit)
	}
}

func TestParseListQuery_SortTangDan(t *testing.T) {
	q := listQueryFromRequest(t, "/list?sortType=asc&sortBy=views&query=%20hello%20")
	if q.SortType != 1 {
		t.Errorf("sortType=asc phải là 1, nhận được %d", q.SortType)
	}
	if q.SortBy != "views" {
		t.Errorf("sortBy sai: %s", q.SortBy)
	}
	if q.Query != "hello" {
		t.Errorf("query phải được trim khoảng trắng, nhận được %q", q.Query)
	}
}

func TestNormalizeSortField(t *testing.T) {
	allowed := []string{"createdAt", "views", "title"}
	if got := NormalizeSortField("views", allowed, "createdAt"); got != "views" {
		t.Errorf("field trong whitelist phải được giữ, nhận được %s", got)
	}
	if got := NormalizeSortField("password", allowed, "createdAt"); got != "createdAt" {
		t.Errorf("field ngoài whitelist phải về fallback, nhận được %s", got)
	}
	if got := NormalizeSortField("", allowed, "createdAt"); got != "createdAt" {
		t.Errorf("field rỗng phải về fallback, nhận được %s", got)
	}
}

func TestParamObjectID(t *testing.T) {
	h := &BaseHandler{}
	var gotID primitive.ObjectID
	var gotErr error

	app := fiber.New()
	app.Get("/item/:id", func(c fiber.Ctx) error {
		gotID, gotErr = h.ParamObjectID(c, "id")
		return c.SendStatus(fiber.StatusOK)
	})

	valid := primitive.NewObjectID()
	resp, err := app.Test(httptest.NewRequest("GET", "/item/"+valid.Hex(), nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	resp.Body.Close()
	if gotErr != nil {
		t.Fatalf("ObjectID hợp lệ không được trả lỗi: %v", gotErr)
	}
	if gotID != valid {
		t.Errorf("ObjectID parse sai: %s != %s", gotID.Hex(), valid.Hex())
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/item/khong-hop-le", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	resp.Body.Close()
	var customErr *common.Error
	if !errors.As(gotErr, &customErr) || customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("ObjectID sai định dạng phải trả lỗi 400, nhận được: %v", gotErr)
	}
}

func TestActorID_ChuaXacThuc(t *testing.T) {
	h := &BaseHandler{}
	var gotErr error

	app := fiber.New()
	app.Get("/private", func(c fiber.Ctx) error {
		_, gotErr = h.ActorID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	resp.Body.Close()
	if !errors.Is(gotErr, common.ErrTokenMissing) {
		t.Errorf("request không có identity phải trả ErrTokenMissing, nhận được: %v", gotErr)
	}
}

func TestViewerID_AnDanhKhongLoi(t *testing.T) {
	h := &BaseHandler{}
	var gotID primitive.ObjectID

	app := fiber.New()
	app.Get("/public", func(c fiber.Ctx) error {
		gotID = h.ViewerID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/public", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	resp.Body.Close()
	if gotID != primitive.NilObjectID {
		t.Errorf("viewer ẩn danh phải là NilObjectID, nhận được %s", gotID.Hex())
	}
}
