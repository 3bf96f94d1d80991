package pacman

// Status classifies the most recent logged lifecycle action for a package.
// The values double as the display tags used in timeline output.
type Status string

const (
	StatusInstalled Status = "INS"
	StatusUpgraded  Status = "UPG"
	StatusRemoved   Status = "REM"
	StatusUnknown   Status = "ERR"
)

// Event is the most recent logged action for a package. Only the latest
// event per package survives parsing; earlier ones are overwritten in log
// order.
type Event struct {
	Date   string `json:"date"`
	Status Status `json:"status"`
}

// LogEntry is a single matched operation line from the pacman log.
// Unlike Event it keeps the raw action keyword and the version field, so
// the history index can store every operation rather than just the latest.
type LogEntry struct {
	Date    string
	Action  string
	Package string
	Version string
}

// ActionStatus maps a log action keyword to its display status. The log
// grammar only ever matches the three known actions, so StatusUnknown is
// reachable only for a status string that did not come from the parser
// (e.g. a hand-edited cache file).
func ActionStatus(action string) Status {
	switch action {
	case "installed":
		return StatusInstalled
	case "upgraded":
		return StatusUpgraded
	case "removed":
		return StatusRemoved
	default:
		return StatusUnknown
	}
}
