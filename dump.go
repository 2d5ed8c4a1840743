package printc

import (
	"fmt"

	"printc/internal/caller"
)

// Dump prints each value through the Default printer, labeling it with the
// argument's source text recovered from the call site:
//
//	printc.Dump(user, resp.Status)
//	// user = ...
//	// resp.Status = ...
//
// Recovery needs the caller's source file on disk (it is parsed at
// runtime). When the file is missing or the call site cannot be located,
// labels fall back to arg0, arg1, ... and the values are still printed.
// For labels that must be exact regardless of build environment, use the
// explicit Entry API instead.
func Dump(values ...any) {
	if len(values) == 0 {
		return
	}
	labels, ok := caller.ArgTexts(0, "Dump", len(values))
	entries := make([]Entry, len(values))
	for i, v := range values {
		label := fmt.Sprintf("arg%d", i)
		if ok && labels[i] != "" {
			label = labels[i]
		}
		entries[i] = E(label, v)
	}
	Default.Print(entries...)
}
