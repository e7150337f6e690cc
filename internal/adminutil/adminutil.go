// Package adminutil holds the moderation-view helpers shared by the bot's
// admin commands and the adminctl CLI: client-side student filtering and
// CSV export of the student list.
package adminutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// FilterStudents narrows the student list by a free-text query matched
// case-insensitively against name, email and mobile. An empty query returns
// the input unchanged. Filtering happens on the client: the listing endpoint
// has no search parameter.
func FilterStudents(students []domain.AdminStudentUser, query string) []domain.AdminStudentUser {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return students
	}

	var out []domain.AdminStudentUser
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.Name), query) ||
			(s.Email != nil && strings.Contains(strings.ToLower(*s.Email), query)) ||
			(s.Mobile != nil && strings.Contains(*s.Mobile, query)) {
			out = append(out, s)
		}
	}
	return out
}

// CSVHeader is the column order of StudentsCSV rows.
var CSVHeader = []string{
	"ID", "Name", "Age", "Email", "Mobile",
	"Board", "Class", "Status", "Verified", "Registered",
}

// CSVRow flattens one student into CSVHeader order. Nullable fields become
// empty cells.
func CSVRow(s domain.AdminStudentUser) []string {
	return []string{
		s.ID,
		s.Name,
		fmt.Sprintf("%d", s.Age),
		orEmpty(s.Email),
		orEmpty(s.Mobile),
		orEmpty(s.BoardName),
		orEmpty(s.ClassName),
		statusText(s.IsActive),
		verifiedText(s.IsVerified),
		FormatDate(s.CreatedAt),
	}
}

// FormatDate renders timestamps the way the dashboard shows them.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}

// DaysAgo says how long ago t was, in whole days.
func DaysAgo(t time.Time, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func statusText(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func verifiedText(verified bool) string {
	if verified {
		return "Yes"
	}
	return "No"
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
