package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Clamp(-3, 0, 7))
	assert.Equal(7, Clamp(9, 0, 7))
	assert.Equal(4, Clamp(4, 0, 7))
}

func TestModIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
	assert.Equal(5, Mod(17, 12))
	assert.Equal(6, Mod(-8, 7))
}

func TestIndent(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("\ta\n\tb", Indent("a\nb", "\t"))
	assert.Equal("", Indent("", "\t"))
}

func TestFoldWidth(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#3", FoldWidth("Ｃ＃３"))
	assert.Equal("E♭4", FoldWidth("E♭４"))
}
