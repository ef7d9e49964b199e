package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPaginateResult_TinhTongSoTrang(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	result := NewPaginateResult(items, 2, 5, 12)

	if result.Page != 2 || result.Limit != 5 {
		t.Errorf("page/limit phải được giữ nguyên: page=%d limit=%d", result.Page, result.Limit)
	}
	if result.ItemCount != 5 {
		t.Errorf("itemCount phải bằng số phần tử trang hiện tại, nhận được %d", result.ItemCount)
	}
	if result.Total != 12 {
		t.Errorf("total sai: %d", result.Total)
	}
	// 12 bản ghi, mỗi trang 5 => 3 trang (trang cuối 2 bản ghi)
	if result.TotalPage != 3 {
		t.Errorf("totalPage phải là 3, nhận được %d", result.TotalPage)
	}
}

func TestNewPaginateResult_TongChiaHetChoLimit(t *testing.T) {
	result := NewPaginateResult([]int{1, 2, 3, 4, 5}, 1, 5, 10)
	if result.TotalPage != 2 {
		t.Errorf("10 bản ghi limit 5 phải là 2 trang, nhận được %d", result.TotalPage)
	}
}

func TestNewPaginateResult_KhongCoKetQua(t *testing.T) {
	result := NewPaginateResult([]int{}, 1, 10, 0)
	if result.TotalPage != 0 {
		t.Errorf("không có bản ghi thì totalPage phải là 0, nhận được %d", result.TotalPage)
	}
	if result.ItemCount != 0 {
		t.Errorf("itemCount phải là 0, nhận được %d", result.ItemCount)
	}
	if result.Items == nil {
		t.Error("items phải là slice rỗng, không phải nil")
	}
}

func TestPaginateResult_TenKeyJSON(t *testing.T) {
	result := NewPaginateResult([]int{1, 2}, 1, 10, 2)

	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal lỗi: %v", err)
	}
	body := string(raw)

	for _, key := range []string{`"totalItems"`, `"totalPages"`, `"itemCount"`, `"items"`, `"page"`, `"limit"`} {
		if !strings.Contains(body, key) {
			t.Errorf("JSON phải chứa key %s, nhận được %s", key, body)
		}
	}
	if strings.Contains(body, `"totalPage"`+":") || strings.Contains(body, `"total"`+":") {
		t.Errorf("key cũ không được xuất hiện trong JSON: %s", body)
	}
}

func TestNewPaginateResult_LimitKhongHopLe(t *testing.T) {
	// limit <= 0 đã được chuẩn hóa ở tầng handler, nhưng không được chia cho 0
	result := NewPaginateResult([]int{1}, 1, 0, 1)
	if result.TotalPage != 0 {
		t.Errorf("limit 0 không được panic và totalPage phải là 0, nhận được %d", result.TotalPage)
	}
}
