package describe

import "github-activity/internal/adapters/ingest/github"

// All renders every event in feed order. The first malformed event aborts the batch
// and a panic while rendering is recovered into a *PanicError. A nil entry is a null element
func All(events []*github.Event) (lines []string, err error) {
	i := 0
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, &PanicError{Index: i, Value: r}
		}
	}()

	lines = make([]string, 0, len(events))
	for i = range events {
		if events[i] == nil {
			return nil, withIndex(malformed("event", "is null", nil), i)
		}
		line, derr := Describe(*events[i])
		if derr != nil {
			return nil, withIndex(derr, i)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
