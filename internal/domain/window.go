package domain

import "time"

// Window - период по датам записей. End всегда включается, нулевой End
// оставляет период открытым
type Window struct {
	Start          time.Time
	StartInclusive bool
	End            time.Time
}

// Contains сообщает, попадает ли t в период
func (w Window) Contains(t time.Time) bool {
	if w.StartInclusive {
		if t.Before(w.Start) {
			return false
		}
	} else if !t.After(w.Start) {
		return false
	}
	return w.End.IsZero() || !t.After(w.End)
}
