package utils

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type pagedItem struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string
}

func paginationDB(t *testing.T, items int) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("cannot open test db: %v", err)
	}
	if err = gdb.AutoMigrate(&pagedItem{}); err != nil {
		t.Fatalf("cannot migrate: %v", err)
	}
	for i := 1; i <= items; i++ {
		if err = gdb.Create(&pagedItem{Name: fmt.Sprintf("item %d", i)}).Error; err != nil {
			t.Fatalf("cannot insert: %v", err)
		}
	}
	return gdb
}

func TestPaginate(t *testing.T) {
	gdb := paginationDB(t, 11)
	tests := []struct {
		name      string
		pageParam string
		wantItems int
		wantPage  int
		wantNext  bool
		wantPrev  bool
	}{
		{name: "first page full", pageParam: "1", wantItems: 10, wantPage: 1, wantNext: true, wantPrev: false},
		{name: "second page remainder", pageParam: "2", wantItems: 1, wantPage: 2, wantNext: false, wantPrev: true},
		{name: "missing param means first", pageParam: "", wantItems: 10, wantPage: 1, wantNext: true, wantPrev: false},
		{name: "garbage means first", pageParam: "nope", wantItems: 10, wantPage: 1, wantNext: true, wantPrev: false},
		{name: "zero clamps to first", pageParam: "0", wantItems: 10, wantPage: 1, wantNext: true, wantPrev: false},
		{name: "too large clamps to last", pageParam: "99", wantItems: 1, wantPage: 2, wantNext: false, wantPrev: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate[pagedItem](gdb.Model(&pagedItem{}).Order("id ASC"), tt.pageParam)
			if err != nil {
				t.Fatalf("Paginate error: %v", err)
			}
			if len(page.Items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(page.Items), tt.wantItems)
			}
			if page.Number != tt.wantPage {
				t.Errorf("number = %d, want %d", page.Number, tt.wantPage)
			}
			if page.TotalPages != 2 {
				t.Errorf("total pages = %d, want 2", page.TotalPages)
			}
			if page.HasNext != tt.wantNext || page.HasPrev != tt.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", page.HasNext, page.HasPrev, tt.wantNext, tt.wantPrev)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	gdb := paginationDB(t, 0)
	page, err := Paginate[pagedItem](gdb.Model(&pagedItem{}).Order("id ASC"), "5")
	if err != nil {
		t.Fatalf("Paginate error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("items = %d, want 0", len(page.Items))
	}
	if page.Number != 1 || page.TotalPages != 1 {
		t.Errorf("number/total = %d/%d, want 1/1", page.Number, page.TotalPages)
	}
	if page.HasNext || page.HasPrev {
		t.Errorf("empty collection should have no next/prev")
	}
}
