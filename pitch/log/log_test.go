package log

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(level LogLevel, fn func()) string {
	color.NoColor = true
	buf := new(bytes.Buffer)
	prevOutput, prevLevel := Output, Level
	Output, Level = buf, level
	defer func() {
		Output, Level = prevOutput, prevLevel
	}()
	fn()
	return buf.String()
}

func TestLevelFiltersMessages(t *testing.T) {
	assert := assert.New(t)
	emit := func() {
		Warnf("w%d", 1)
		Infof("i%d", 2)
		Debugf("d%d", 3)
	}
	assert.Equal("", capture(LogLevel_None, emit))
	assert.Equal("[WARNING] w1\n", capture(LogLevel_Warn, emit))
	assert.Equal("[WARNING] w1\ni2\n", capture(LogLevel_Info, emit))
	assert.Equal("[WARNING] w1\ni2\nd3\n", capture(LogLevel_Debug, emit))
}

func TestDebugIndent(t *testing.T) {
	out := capture(LogLevel_Debug, func() {
		Debugf("outer")
		Enter()
		Debugf("inner")
		Leave()
		Debugf("outer")
	})
	assert.Equal(t, "outer\n  inner\nouter\n", out)
}

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)
	for _, l := range []LogLevel{LogLevel_None, LogLevel_Warn, LogLevel_Info, LogLevel_Debug} {
		parsed, err := ParseLevel(l.String())
		assert.NoError(err)
		assert.Equal(l, parsed)
	}
	l, err := ParseLevel("DEBUG")
	assert.NoError(err)
	assert.Equal(LogLevel_Debug, l)

	_, err = ParseLevel("verbose")
	assert.Error(err)
}

func TestUnbalancedLeave(t *testing.T) {
	out := capture(LogLevel_Debug, func() {
		Leave()
		Debugf("top")
		Enter()
	})
	assert.Equal(t, "top\n", out)
}
