package discord

// Status classifies the outcome a notification reports.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

// statusColors maps each status to its fixed embed color. The table is
// initialized once and never mutated.
var statusColors = map[Status]int{
	StatusSuccess: 0x57F287,
	StatusWarning: 0xFEE75C,
	StatusError:   0xED4245,
	StatusInfo:    0x5865F2,
}

// Color returns the fixed embed color for the status. Unknown statuses
// resolve to the info color.
func (s Status) Color() int {
	if color, ok := statusColors[s]; ok {
		return color
	}
	return statusColors[StatusInfo]
}

// IsValid reports whether the status is one of the four known values.
func (s Status) IsValid() bool {
	_, ok := statusColors[s]
	return ok
}
