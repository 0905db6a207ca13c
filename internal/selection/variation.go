package selection

import (
	"hash/fnv"
	"time"

	"pulsecheck/internal/model"
)

// ResolveText picks one phrasing for a chosen template. The choice is
// keyed on (user, template, calendar date) via FNV-1a, so it is stable
// for the whole day and portable across platforms, while still varying
// across days and users. Index 0 keeps the primary text.
func ResolveText(userID string, t *model.QuestionTemplate, day time.Time) string {
	if len(t.Variations) == 0 {
		return t.Text
	}
	h := fnv.New64a()
	h.Write([]byte(userID))
	h.Write([]byte{'|'})
	h.Write([]byte(t.ID))
	h.Write([]byte{'|'})
	h.Write([]byte(day.Format("2006-01-02")))

	idx := h.Sum64() % uint64(len(t.Variations)+1)
	if idx == 0 {
		return t.Text
	}
	return t.Variations[idx-1]
}
