package telegram

import "testing"

func TestPaginationRowFirstPage(t *testing.T) {
	row := PaginationRow(0, 3, "pg")
	if len(row) != 2 {
		t.Fatalf("buttons = %d, want 2 (indicator + next)", len(row))
	}
	if row[0].Text != "1/3" || row[0].CallbackData != "cur" {
		t.Errorf("indicator = %+v", row[0])
	}
	if row[1].CallbackData != "pg_1" {
		t.Errorf("next = %q", row[1].CallbackData)
	}
}

func TestPaginationRowMiddlePage(t *testing.T) {
	row := PaginationRow(1, 3, "pg")
	if len(row) != 3 {
		t.Fatalf("buttons = %d, want 3", len(row))
	}
	if row[0].CallbackData != "pg_0" || row[2].CallbackData != "pg_2" {
		t.Errorf("prev/next = %q, %q", row[0].CallbackData, row[2].CallbackData)
	}
}

func TestPaginationRowLastPage(t *testing.T) {
	row := PaginationRow(2, 3, "pg")
	if len(row) != 2 {
		t.Fatalf("buttons = %d, want 2 (prev + indicator)", len(row))
	}
	if row[0].CallbackData != "pg_1" {
		t.Errorf("prev = %q", row[0].CallbackData)
	}
	if row[1].Text != "3/3" {
		t.Errorf("indicator = %q", row[1].Text)
	}
}
