package western

import (
	"github.com/but80/notefreq/pitch/enums"
	"github.com/pkg/errors"
)

// Check は、Validate が黙って補正・既定値化してしまう入力を報告します。
func Check(a Attributes) error {
	if a.Octave != nil && (*a.Octave < MinOctave || MaxOctave < *a.Octave) {
		return errors.Errorf("octave %d is out of range (%d..%d)", *a.Octave, MinOctave, MaxOctave)
	}
	if a.Letter != "" {
		if _, ok := enums.ParseLetter(a.Letter); !ok {
			return errors.Errorf("unknown letter %q", a.Letter)
		}
	}
	if a.Modifier != "" {
		if _, ok := enums.ParseModifier(a.Modifier); !ok {
			return errors.Errorf("unknown modifier %q", a.Modifier)
		}
	}
	return nil
}
