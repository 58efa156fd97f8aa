package phase

// FilePhase tracks the compilation phase of an individual source file
//
// Phase progression must be sequential:
// - NotStarted -> Parsed (the parser hands over a syntax tree)
// - Parsed -> Registered -> Resolved
//
// Phase transitions are validated using AdvanceFilePhase() which checks
// that prerequisites are satisfied via the PhasePrerequisites map.
type FilePhase int

const (
	PhaseNotStarted FilePhase = iota // File discovered but not processed
	PhaseParsed                      // Syntax tree built
	PhaseRegistered                  // Declarations registered in the symbol table
	PhaseResolved                    // Placeholders and names resolved
)

// PhasePrerequisites maps each phase to its required predecessor phase
// This explicit mapping is safer than arithmetic and allows for non-linear phase progressions
var PhasePrerequisites = map[FilePhase]FilePhase{
	PhaseParsed:     PhaseNotStarted,
	PhaseRegistered: PhaseParsed,
	PhaseResolved:   PhaseRegistered,
}

func (p FilePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseParsed:
		return "Parsed"
	case PhaseRegistered:
		return "Registered"
	case PhaseResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// CanAdvance reports whether a file at phase from may move to phase to.
func CanAdvance(from, to FilePhase) bool {
	prerequisite, exists := PhasePrerequisites[to]
	if !exists {
		return false
	}
	return from == prerequisite
}
