package diag

// Severity labels a rendered header line.
type Severity uint8

const (
	SevError Severity = iota
	// SevNote marks a secondary location of the same error.
	SevNote
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevNote:
		return "note"
	}
	return "unknown"
}
