package printc

import "github.com/sanity-io/litter"

// Default rendering mirrors Rust's {:#?}: multi-line, field-by-field,
// unexported fields included.
var prettyOptions = litter.Options{
	HidePrivateFields: false,
}

var compactOptions = litter.Options{
	HidePrivateFields: false,
	Compact:           true,
}

type litterRenderer struct {
	opts litter.Options
}

func (r litterRenderer) Render(v any) string {
	return r.opts.Sdump(v)
}
