package enums

import "encoding/json"

type Tuning int

const (
	Tuning_Unset Tuning = iota
	Tuning_EDO12
	Tuning_JustIntonation
)

func ParseTuning(s string) (Tuning, bool) {
	switch s {
	case "EDO12":
		return Tuning_EDO12, true
	case "JustIntonation":
		return Tuning_JustIntonation, true
	}
	return Tuning_Unset, false
}

func (t Tuning) String() string {
	switch t {
	case Tuning_EDO12:
		return "EDO12"
	case Tuning_JustIntonation:
		return "JustIntonation"
	}
	return ""
}

func (t Tuning) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tuning) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t, _ = ParseTuning(s)
	return nil
}
