package repair

import "fmt"

// warningLog is the append-only, deduplicated repair log for one Repair
// call. Insertion order is preserved; duplicates are silently ignored. The
// engine never branches on logged entries.
type warningLog struct {
	seen    map[string]struct{}
	ordered []string
}

func newWarningLog(existing []string) *warningLog {
	log := &warningLog{seen: make(map[string]struct{}, len(existing))}
	for _, entry := range existing {
		log.add("%s", entry)
	}
	return log
}

func (l *warningLog) add(format string, args ...any) {
	entry := fmt.Sprintf(format, args...)
	if entry == "" {
		return
	}
	if _, dup := l.seen[entry]; dup {
		return
	}
	l.seen[entry] = struct{}{}
	l.ordered = append(l.ordered, entry)
}

func (l *warningLog) entries() []string {
	if len(l.ordered) == 0 {
		return nil
	}
	return l.ordered
}
