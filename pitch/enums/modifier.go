package enums

import "encoding/json"

type Modifier int

const (
	Modifier_Natural Modifier = iota
	Modifier_Sharp
	Modifier_Flat
)

// ASCII の "#" と "b" は ♯ と ♭ として扱います。
func ParseModifier(s string) (Modifier, bool) {
	switch s {
	case "♮":
		return Modifier_Natural, true
	case "♯", "#":
		return Modifier_Sharp, true
	case "♭", "b":
		return Modifier_Flat, true
	}
	return Modifier_Natural, false
}

func (m Modifier) String() string {
	switch m {
	case Modifier_Sharp:
		return "♯"
	case Modifier_Flat:
		return "♭"
	}
	return "♮"
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Modifier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*m, _ = ParseModifier(s)
	return nil
}
