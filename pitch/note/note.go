package note

import (
	"fmt"

	"github.com/but80/notefreq/pitch/util"
	"github.com/but80/notefreq/pitch/western"
)

// 周波数だけで作られた音は Descriptor を持たず、JustIntonation で作られた音は主音を Key に持ちます。
type Note struct {
	*western.Descriptor
	Hertz float64 `json:"hertz"`
	Key   *Note   `json:"key,omitempty"`
}

// New は、入力の種類に応じて Note を作ります。
// Hertz はそのまま周波数に、Prebuilt は複製に、それ以外は EDO12 で解決されます。
func New(in Input) Note {
	switch v := in.(type) {
	case Hertz:
		return Note{Hertz: float64(v)}
	case Prebuilt:
		return Note(v).clone()
	case Spec:
		return EDO12(v)
	}
	return EDO12(nil)
}

func ValidateWestern(s Spec) western.Descriptor {
	return western.Validate(attributesOf(s))
}

// Check は、s が補正なしで有効な音名かを調べます。
func Check(s Spec) error {
	return western.Check(attributesOf(s))
}

func (n Note) clone() Note {
	if n.Descriptor != nil {
		d := *n.Descriptor
		n.Descriptor = &d
	}
	if n.Key != nil {
		k := n.Key.clone()
		n.Key = &k
	}
	return n
}

func (n Note) HasDescriptor() bool {
	return n.Descriptor != nil
}

// A4 は 69 です。
func (n Note) MIDIKey() (int, bool) {
	if n.Descriptor == nil {
		return 0, false
	}
	return n.PianoKeyIndex + 20, true
}

func (n Note) String() string {
	if n.Descriptor == nil {
		return fmt.Sprintf("%.3fHz", n.Hertz)
	}
	s := fmt.Sprintf("%s%d %.3fHz %s", n.NameSimple, n.OctaveIndex, n.Hertz, n.Tuning)
	if n.Key != nil {
		s += "\n" + util.Indent("key: "+n.Key.String(), "\t")
	}
	return s
}
