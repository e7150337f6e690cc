package handler

import "testing"

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name                 string
		total, page, perPage int
		wantStart, wantEnd   int
		wantPage, wantTotal  int
	}{
		{"first page full", 20, 0, 6, 0, 6, 0, 4},
		{"last page partial", 20, 3, 6, 18, 20, 3, 4},
		{"page past end clamps", 20, 99, 6, 18, 20, 3, 4},
		{"negative page clamps", 20, -1, 6, 0, 6, 0, 4},
		{"single short page", 3, 0, 6, 0, 3, 0, 1},
		{"empty list", 0, 0, 6, 0, 0, 0, 1},
		{"exact multiple", 12, 1, 6, 6, 12, 1, 2},
	}

	for _, tt := range tests {
		start, end, page, totalPages := pageBounds(tt.total, tt.page, tt.perPage)
		if start != tt.wantStart || end != tt.wantEnd || page != tt.wantPage || totalPages != tt.wantTotal {
			t.Errorf("%s: got (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				tt.name, start, end, page, totalPages,
				tt.wantStart, tt.wantEnd, tt.wantPage, tt.wantTotal)
		}
	}
}
