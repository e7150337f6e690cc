package adminutil

import (
	"testing"
	"time"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

func strPtr(s string) *string { return &s }

func sampleStudents() []domain.AdminStudentUser {
	return []domain.AdminStudentUser{
		{ID: "u1", Name: "Ravi Kumar", Email: strPtr("ravi@example.com"), Mobile: strPtr("9876543210"), IsActive: true},
		{ID: "u2", Name: "Asha Patel", Email: strPtr("asha@example.com"), Mobile: strPtr("9123456789"), IsActive: false},
		{ID: "u3", Name: "Meena", Email: nil, Mobile: nil, IsActive: true},
	}
}

func TestFilterStudents(t *testing.T) {
	students := sampleStudents()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"u1", "u2", "u3"}},
		{"ravi", []string{"u1"}},
		{"RAVI", []string{"u1"}},
		{"asha@example.com", []string{"u2"}},
		{"9123", []string{"u2"}},
		{"een", []string{"u3"}},
		{"nobody", nil},
	}

	for _, tt := range tests {
		got := FilterStudents(students, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("query %q: got %d results, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, s := range got {
			if s.ID != tt.want[i] {
				t.Errorf("query %q: result[%d] = %s, want %s", tt.query, i, s.ID, tt.want[i])
			}
		}
	}
}

func TestFilterDoesNotPanicOnNilFields(t *testing.T) {
	students := []domain.AdminStudentUser{{ID: "u1", Name: "NoContact"}}
	if got := FilterStudents(students, "nocontact"); len(got) != 1 {
		t.Errorf("got %d results", len(got))
	}
}

func TestCSVRow(t *testing.T) {
	s := domain.AdminStudentUser{
		ID:         "u1",
		Name:       "Ravi Kumar",
		Age:        14,
		Email:      strPtr("ravi@example.com"),
		Mobile:     strPtr("9876543210"),
		BoardName:  strPtr("CBSE"),
		ClassName:  strPtr("Class 9"),
		IsActive:   true,
		IsVerified: false,
		CreatedAt:  time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
	}

	row := CSVRow(s)
	if len(row) != len(CSVHeader) {
		t.Fatalf("row has %d cells, header has %d", len(row), len(CSVHeader))
	}
	want := []string{"u1", "Ravi Kumar", "14", "ravi@example.com", "9876543210",
		"CBSE", "Class 9", "Active", "No", "05 Mar 2026"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("cell %s = %q, want %q", CSVHeader[i], row[i], want[i])
		}
	}
}

func TestCSVRowNullableFieldsEmpty(t *testing.T) {
	row := CSVRow(domain.AdminStudentUser{ID: "u3", Name: "Meena", IsActive: false})
	if row[3] != "" || row[4] != "" || row[5] != "" || row[6] != "" {
		t.Errorf("nullable cells not empty: %v", row)
	}
	if row[7] != "Inactive" {
		t.Errorf("status = %q", row[7])
	}
	if row[9] != "" {
		t.Errorf("zero registered date = %q", row[9])
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		t    time.Time
		want string
	}{
		{now, "today"},
		{now.Add(-25 * time.Hour), "1 day ago"},
		{now.Add(-10 * 24 * time.Hour), "10 days ago"},
	}
	for _, tt := range tests {
		if got := DaysAgo(tt.t, now); got != tt.want {
			t.Errorf("DaysAgo(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
