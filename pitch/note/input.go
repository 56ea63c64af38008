package note

import (
	"strings"

	"github.com/but80/notefreq/pitch/util"
	"github.com/but80/notefreq/pitch/western"
)

// Input は、New に渡せる入力です。
// Hertz, Prebuilt, Attrs, Name, PianoKey のいずれか、または nil (すべて既定値) です。
type Input interface {
	isInput()
}

// Spec は、西洋音名として解釈される入力です。Attrs, Name, PianoKey が実装します。
// nil はすべて既定値 (A4) を意味します。
type Spec interface {
	Input
	attributes() western.Attributes
}

type Hertz float64

// Prebuilt は、構築済みの音です。フィールドはそのまま複製されます。
type Prebuilt Note

type Attrs western.Attributes

type Name string

// PianoKey は、PianoKeyIndex による指定です。49 が A4 です。
// オクターブが 0..7 に収まらない番号は端のオクターブに丸められます。
type PianoKey int

// FromMIDIKey は、MIDI のノート番号 (69 = A4) を PianoKey に変換します。
func FromMIDIKey(key int) PianoKey {
	return PianoKey(key - 20)
}

func (Hertz) isInput()    {}
func (Prebuilt) isInput() {}
func (Attrs) isInput()    {}
func (Name) isInput()     {}
func (PianoKey) isInput() {}

func (a Attrs) attributes() western.Attributes {
	return western.Attributes(a)
}

func (n Name) attributes() western.Attributes {
	return western.Parse(string(n))
}

func attributesOf(s Spec) western.Attributes {
	if s == nil {
		return western.Attributes{}
	}
	return s.attributes()
}

func (k PianoKey) attributes() western.Attributes {
	i := util.Mod(int(k), 12)
	octave := (int(k) - i) / 12
	if 3 < i {
		octave++
	}
	name := western.Names[i]
	return western.Attributes{
		Letter:   name[:1],
		Modifier: strings.TrimPrefix(name, name[:1]),
		Octave:   western.Octave(octave),
	}
}
