package western

import (
	"math"

	"github.com/but80/notefreq/pitch/enums"
	"github.com/but80/notefreq/pitch/log"
	"github.com/but80/notefreq/pitch/util"
)

const (
	DefaultA      = 440.0
	DefaultOctave = 4
	MinOctave     = 0
	MaxOctave     = 7
)

// Names は、12音の正規の表記です。NameIndex はこの表の添字です。
var Names = [12]string{"A♭", "A♮", "B♭", "B♮", "C♮", "C♯", "D♮", "E♭", "E♮", "F♮", "F♯", "G♮"}

func nameIndex(name string) int {
	for i, n := range Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Descriptor は、Validate によって全フィールドが確定した音の記述です。
type Descriptor struct {
	A             float64        `json:"A"`
	Letter        enums.Letter   `json:"letter"`
	LetterIndex   int            `json:"letterIndex"`
	Modifier      enums.Modifier `json:"modifier"`
	OctaveIndex   int            `json:"octaveIndex"`
	IsSharp       bool           `json:"isSharp"`
	IsFlat        bool           `json:"isFlat"`
	IsNatural     bool           `json:"isNatural"`
	Name          string         `json:"name"`
	NameSimple    string         `json:"nameSimple"`
	NameIndex     int            `json:"nameIndex"`
	PianoKeyIndex int            `json:"pianoKeyIndex"`
	Tuning        enums.Tuning   `json:"tuning"`
}

func (d Descriptor) Attributes() Attributes {
	return Attributes{
		Letter:   d.Letter.String(),
		Modifier: d.Modifier.String(),
		Octave:   Octave(d.OctaveIndex),
		A:        d.A,
		Tuning:   d.Tuning,
	}
}

type position struct {
	letterIndex int
	octave      int
}

// wrap は、letterIndex を 0..6 に戻します。
// 下に溢れたときはオクターブを1つ下げますが、上に溢れたときは上げません。
func (p *position) wrap() {
	if p.letterIndex < 0 {
		p.letterIndex += len(enums.Letters)
		p.octave--
	}
	if len(enums.Letters) <= p.letterIndex {
		p.letterIndex -= len(enums.Letters)
	}
}

func (p *position) letter() enums.Letter {
	return enums.Letter(p.letterIndex)
}

// Validate は、部分的な Attributes を既定値で補い、正規化した Descriptor を返します。
// どのような入力に対しても必ず何らかの有効な Descriptor を返します。
func Validate(a Attributes) Descriptor {
	d := Descriptor{
		A:      a.A,
		Tuning: a.Tuning,
	}
	if d.A == 0 || math.IsNaN(d.A) {
		d.A = DefaultA
	}
	if d.Tuning == enums.Tuning_Unset {
		d.Tuning = enums.Tuning_EDO12
	}

	p := position{octave: DefaultOctave}
	if a.Octave != nil {
		p.octave = util.Clamp(*a.Octave, MinOctave, MaxOctave)
	}

	letter := enums.Letter_A
	if a.Letter != "" {
		var ok bool
		if letter, ok = enums.ParseLetter(a.Letter); !ok {
			log.Debugf("unknown letter %q", a.Letter)
		}
	}
	p.letterIndex = int(letter)

	modifier := enums.Modifier_Natural
	if a.Modifier != "" {
		var ok bool
		if modifier, ok = enums.ParseModifier(a.Modifier); !ok {
			log.Debugf("unknown modifier %q, using %s", a.Modifier, modifier)
		}
	}

	// 12音の表にない組み合わせは隣の音名に読み替える
	switch {
	case modifier == enums.Modifier_Flat && !letter.CanBeFlat():
		p.letterIndex--
		p.wrap()
		modifier = enums.Modifier_Natural
		if p.letter().CanBeSharp() {
			modifier = enums.Modifier_Sharp
		}
		log.Debugf("%s♭ -> %s%s", letter, p.letter(), modifier)
	case modifier == enums.Modifier_Sharp && !letter.CanBeSharp():
		p.letterIndex++
		p.wrap()
		modifier = enums.Modifier_Natural
		if p.letter().CanBeFlat() {
			modifier = enums.Modifier_Flat
		}
		log.Debugf("%s♯ -> %s%s", letter, p.letter(), modifier)
	}

	d.Modifier = modifier
	switch modifier {
	case enums.Modifier_Sharp:
		d.IsSharp = true
	case enums.Modifier_Flat:
		d.IsFlat = true
	default:
		d.IsNatural = true
	}

	p.wrap()
	d.Letter = p.letter()
	d.LetterIndex = p.letterIndex
	d.OctaveIndex = p.octave

	d.Name = d.Letter.String() + d.Modifier.String()
	d.NameSimple = d.Letter.String()
	if d.Modifier != enums.Modifier_Natural {
		d.NameSimple += d.Modifier.String()
	}
	d.NameIndex = nameIndex(d.Name)
	d.PianoKeyIndex = d.OctaveIndex*12 + d.NameIndex
	if 3 < d.NameIndex {
		d.PianoKeyIndex -= 12
	}
	return d
}
