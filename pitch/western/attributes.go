package western

import "github.com/but80/notefreq/pitch/enums"

// Attributes は、音名の部分的な指定です。
// 空文字列・nil・ゼロ値のフィールドは未指定として扱われ、Validate が既定値で補います。
type Attributes struct {
	Letter   string       `json:"letter,omitempty"`
	Modifier string       `json:"modifier,omitempty"`
	Octave   *int         `json:"octaveIndex,omitempty"`
	A        float64      `json:"A,omitempty"`
	Tuning   enums.Tuning `json:"tuning,omitempty"`
}

func Octave(i int) *int {
	return &i
}
