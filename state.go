package latex

// State of the Builder, it only moves forward: Preamble -> InDocument -> Closed.
type State int

const (
	Preamble State = iota
	InDocument
	Closed
)

func (s State) String() string {
	switch s {
	case Preamble:
		return "preamble"
	case InDocument:
		return "document"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
