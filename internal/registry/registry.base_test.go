package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegister_ItemMoiVaGhiDe(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("videos", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("lần đăng ký đầu phải là item mới")
	}

	isNew, err = r.Register("videos", 2)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if isNew {
		t.Error("đăng ký trùng tên phải báo ghi đè (isNew=false)")
	}

	got, exists := r.Get("videos")
	if !exists || got != 2 {
		t.Errorf("item phải bị ghi đè thành 2, nhận được %d (exists=%v)", got, exists)
	}
}

func TestRegister_TenRongBaoLoi(t *testing.T) {
	r := NewRegistry[string]()
	if _, err := r.Register("", "x"); err == nil {
		t.Error("tên rỗng phải trả về lỗi")
	}
}

func TestGet_KhongTonTai(t *testing.T) {
	r := NewRegistry[string]()
	_, exists := r.Get("khong-co")
	if exists {
		t.Error("item chưa đăng ký không được tồn tại")
	}
}

func TestGetOrCreate_ChiTaoMotLan(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		got, err := r.GetOrCreate("likes", creator)
		if err != nil {
			t.Fatalf("GetOrCreate lỗi: %v", err)
		}
		if got != 42 {
			t.Errorf("giá trị sai: %d", got)
		}
	}
	if calls != 1 {
		t.Errorf("creator chỉ được gọi một lần, nhận được %d lần", calls)
	}
}

func TestGetOrCreate_CreatorLoi(t *testing.T) {
	r := NewRegistry[int]()
	wantErr := errors.New("tạo thất bại")
	_, err := r.GetOrCreate("x", func() (int, error) { return 0, wantErr })
	if err == nil || !errors.Is(err, wantErr) {
		t.Errorf("lỗi của creator phải được wrap và trả về, nhận được: %v", err)
	}
	if _, exists := r.Get("x"); exists {
		t.Error("creator lỗi thì không được lưu item")
	}
}

func TestClear_GoiCleanupTruocKhiXoa(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("tmp", "data")

	cleaned := false
	deleted, err := r.Clear("tmp", func(s string) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if !deleted || !cleaned {
		t.Errorf("item phải được cleanup rồi xóa: deleted=%v cleaned=%v", deleted, cleaned)
	}

	deleted, _ = r.Clear("tmp", nil)
	if deleted {
		t.Error("xóa lần hai phải trả về false")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()

	if _, exists := r.Get("shared"); !exists {
		t.Error("item phải tồn tại sau các thao tác đồng thời")
	}
}
