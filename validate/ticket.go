package validate

import (
	"fmt"
	"strings"

	"github.com/huyi122/Ticket-Master/model"
)

// DuplicateError points at one offending line of a manual paste.
type DuplicateError struct {
	Line int // 1-based, counted over non-blank lines
	Code string
}

func (d DuplicateError) Error() string {
	return fmt.Sprintf("line %d: %q is a duplicate", d.Line, d.Code)
}

// ManualCodes splits a manual paste into trimmed non-blank codes and flags
// every line whose code already exists in the ticket set or earlier in the
// batch. store.AddTicketsManual trusts this check to have run: the append
// itself never re-validates.
func ManualCodes(tickets []model.Ticket, text string) ([]string, []DuplicateError) {
	existing := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		existing[t.Code] = struct{}{}
	}

	var codes []string
	var dups []DuplicateError
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		codes = append(codes, code)
		_, inBatch := seen[code]
		_, inSet := existing[code]
		if inBatch || inSet {
			dups = append(dups, DuplicateError{Line: len(codes), Code: code})
		}
		seen[code] = struct{}{}
	}

	return codes, dups
}

// CodeInUse reports whether code belongs to any ticket other than
// ticketID. Used at edit time for manual code corrections; uniqueness is
// otherwise only a creation-time guarantee.
func CodeInUse(tickets []model.Ticket, ticketID, code string) bool {
	for _, t := range tickets {
		if t.Code == code && t.ID != ticketID {
			return true
		}
	}
	return false
}
