// Package backup builds, exports and restores the versioned snapshot
// document, locally and against the cloud storage collaborator.
package backup

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/huyi122/Ticket-Master/model"
)

// Build wraps the current collections in a v1 backup document.
func Build(events []model.Event, tickets []model.Ticket, now int64) *model.BackupData {
	return &model.BackupData{
		Version:   model.BackupVersion,
		Timestamp: now,
		Events:    events,
		Tickets:   tickets,
	}
}

// LocalFilename names a file export. Only the first ':' of the time part
// is replaced, so the name carries a literal colon before the seconds
// ("...-14-30:05.json"). Kept as-is: cloud names sort against each other,
// not against these.
func LocalFilename(now time.Time) string {
	timePart := strings.Replace(now.Format("15:04:05"), ":", "-", 1)
	return fmt.Sprintf("vip-ticket-backup-%s-%s.json", now.Format("2006-01-02"), timePart)
}

// CloudFilename names a cloud backup, minute precision.
func CloudFilename(now time.Time) string {
	timePart := strings.Replace(now.Format("15:04"), ":", "-", 1)
	return fmt.Sprintf("vip-ticket-backup-%s-%s.json", now.Format("2006-01-02"), timePart)
}

// PickLatest selects the restore candidate: the lexicographically last
// name. Correct only as long as the embedded date/time strings keep their
// zero-padded format, which the two filename builders guarantee.
func PickLatest(names []string) string {
	if len(names) == 0 {
		return ""
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return sorted[len(sorted)-1]
}
