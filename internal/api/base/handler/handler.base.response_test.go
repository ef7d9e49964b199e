// Package basehdl - Test format envelope response thống nhất.
package basehdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"video_tube/internal/common"
)

func doRequest(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("đọc body lỗi: %v", err)
	}
	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("body không phải JSON: %v (body: %s)", err, body)
	}
	return resp.StatusCode, envelope
}

func TestHandleResponse_ThanhCong(t *testing.T) {
	h := &BaseHandler{}
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		h.HandleResponse(c, fiber.Map{"title": "demo"}, nil)
		return nil
	})

	status, envelope := doRequest(t, app, "/ok")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, float64(200), envelope["statusCode"])
	assert.Equal(t, common.MsgSuccess, envelope["message"])
	data, ok := envelope["data"].(map[string]interface{})
	assert.True(t, ok, "data phải là object")
	assert.Equal(t, "demo", data["title"])
}

func TestHandleCreated_Tra201(t *testing.T) {
	h := &BaseHandler{}
	app := fiber.New()
	app.Get("/created", func(c fiber.Ctx) error {
		h.HandleCreated(c, fiber.Map{"id": "x"}, nil)
		return nil
	})

	status, envelope := doRequest(t, app, "/created")
	assert.Equal(t, 201, status)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, float64(201), envelope["statusCode"])
}

func TestHandleResponse_LoiNghiepVu(t *testing.T) {
	h := &BaseHandler{}
	app := fiber.New()
	app.Get("/missing", func(c fiber.Ctx) error {
		h.HandleResponse(c, nil, common.ErrNotFound)
		return nil
	})

	status, envelope := doRequest(t, app, "/missing")
	assert.Equal(t, 404, status)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, float64(404), envelope["statusCode"])
	assert.Equal(t, "Không tìm thấy dữ liệu", envelope["message"])
	// data không được xuất hiện trong envelope lỗi
	_, hasData := envelope["data"]
	assert.False(t, hasData, "envelope lỗi không được chứa data")
}

func TestHandleResponse_LoiKhongXacDinh(t *testing.T) {
	h := &BaseHandler{}
	app := fiber.New()
	app.Get("/boom", func(c fiber.Ctx) error {
		h.HandleResponse(c, nil, assert.AnError)
		return nil
	})

	status, envelope := doRequest(t, app, "/boom")
	assert.Equal(t, 500, status)
	assert.Equal(t, false, envelope["success"])
}

func TestSafeHandler_BatPanic(t *testing.T) {
	h := &BaseHandler{}
	app := fiber.New()
	app.Get("/panic", func(c fiber.Ctx) error {
		return h.SafeHandler(c, func() error {
			panic("có lỗi bất ngờ")
		})
	})

	status, envelope := doRequest(t, app, "/panic")
	assert.Equal(t, 500, status)
	assert.Equal(t, false, envelope["success"])
}
