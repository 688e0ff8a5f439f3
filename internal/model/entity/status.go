package entity

type Status int

const (
	StatusNotStarted Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "none"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Settled reports whether no further transition is pending.
func (s Status) Settled() bool {
	return s == StatusLoaded || s == StatusError
}
