package note

import (
	"math"

	"github.com/but80/notefreq/pitch/enums"
	"github.com/but80/notefreq/pitch/util"
	"github.com/but80/notefreq/pitch/western"
)

const ReferenceKey = 49

var semitone = math.Pow(2, 1.0/12)

func EDO12Hertz(a float64, pianoKeyIndex int) float64 {
	return a * math.Pow(semitone, float64(pianoKeyIndex-ReferenceKey))
}

func EDO12(s Spec) Note {
	d := western.Validate(attributesOf(s))
	d.Tuning = enums.Tuning_EDO12
	return Note{
		Descriptor: &d,
		Hertz:      EDO12Hertz(d.A, d.PianoKeyIndex),
	}
}

// JustRatios は、主音に対する純正律の周波数比です (プトレマイオスの強全音階)。
// 添字は主音からの半音数で、最後の 2 (オクターブ) は参照用です。
var JustRatios = [13]float64{
	1,         // unison
	16.0 / 15, // minor 2nd
	9.0 / 8,   // major 2nd
	6.0 / 5,   // minor 3rd
	5.0 / 4,   // major 3rd
	4.0 / 3,   // perfect 4th
	45.0 / 32, // augmented 4th
	3.0 / 2,   // perfect 5th
	8.0 / 5,   // minor 6th
	5.0 / 3,   // major 6th
	16.0 / 9,  // minor 7th
	15.0 / 8,  // major 7th
	2,         // octave
}

// JustIntonation は、key を主音とする純正律で音を解決します。
// key 自体は EDO12 で解決されます。
func JustIntonation(s, key Spec) Note {
	d := western.Validate(attributesOf(s))
	d.Tuning = enums.Tuning_JustIntonation
	k := EDO12(key)

	r := util.Mod(d.NameIndex-k.NameIndex, 12)
	hertz := k.Hertz * JustRatios[r]
	// 主音と違うオクターブならオクターブ単位でずらす
	hertz *= math.Pow(2, float64(d.OctaveIndex-k.OctaveIndex))
	return Note{
		Descriptor: &d,
		Hertz:      hertz,
		Key:        &k,
	}
}
