package species

import "errors"

// NotFound occurs when subset extraction or an atom projection comes
// up empty.
type NotFound struct {
	Probe string
	In    string
}

func (e *NotFound) Error() string {
	return `"` + e.Probe + `" is not in "` + e.In + `"`
}

// EmptySum occurs when a sum's exclusions cancel its inclusions
// entirely.
var EmptySum = errors.New("sum of species is nothing; check exclusions")
