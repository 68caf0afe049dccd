package model

import "fmt"

// SourceMode selects where ingested prices come from.
type SourceMode int

const (
	LiveMode SourceMode = iota
	TestMode
)

func (m SourceMode) String() string {
	switch m {
	case LiveMode:
		return "live"
	case TestMode:
		return "test"
	default:
		return "unknown"
	}
}

func ParseSourceMode(s string) (SourceMode, error) {
	switch s {
	case "", "live":
		return LiveMode, nil
	case "test":
		return TestMode, nil
	default:
		return LiveMode, fmt.Errorf("unknown source mode %q", s)
	}
}
