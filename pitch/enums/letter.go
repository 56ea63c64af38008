package enums

import (
	"encoding/json"
	"strings"
)

const Letters = "ABCDEFG"

type Letter int

const (
	Letter_A Letter = iota
	Letter_B
	Letter_C
	Letter_D
	Letter_E
	Letter_F
	Letter_G
)

func ParseLetter(s string) (Letter, bool) {
	if len(s) != 1 {
		return -1, false
	}
	i := strings.Index(Letters, strings.ToUpper(s))
	if i < 0 {
		return -1, false
	}
	return Letter(i), true
}

func (l Letter) IsValid() bool {
	return 0 <= l && int(l) < len(Letters)
}

func (l Letter) String() string {
	if !l.IsValid() {
		return "?"
	}
	return Letters[l : l+1]
}

// CanBeFlat は、♭ を付けても12音の表記から外れない音名かを判定します。
func (l Letter) CanBeFlat() bool {
	switch l {
	case Letter_E, Letter_A, Letter_B:
		return true
	}
	return false
}

func (l Letter) CanBeSharp() bool {
	switch l {
	case Letter_C, Letter_F:
		return true
	}
	return false
}

func (l Letter) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Letter) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*l, _ = ParseLetter(s)
	return nil
}
