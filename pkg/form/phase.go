package form

import "fmt"

// Phase is the two-state lifecycle of the form.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ParsePhase converts a phase name back into a Phase.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "editing":
		return PhaseEditing, nil
	case "submitted":
		return PhaseSubmitted, nil
	}
	return PhaseEditing, fmt.Errorf("form: unknown phase %q", s)
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(data []byte) error {
	parsed, err := ParsePhase(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
