package subcmd

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"testing"

	"github.com/but80/notefreq/pb"
	"github.com/but80/notefreq/pitch/log"
	"github.com/but80/notefreq/pitch/note"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
)

func captureStdout(t *testing.T, fn func()) string {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = orig
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func run(t *testing.T, args ...string) string {
	app := cli.NewApp()
	app.Commands = []cli.Command{Show, Just}
	return captureStdout(t, func() {
		assert.NoError(t, app.Run(append([]string{"notefreq"}, args...)))
	})
}

func TestShow(t *testing.T) {
	out := run(t, "show", "3eb", "A4")
	assert.Equal(t, "E♭3 155.563Hz EDO12\nA4 440.000Hz EDO12\n", out)
}

func TestShowJSON(t *testing.T) {
	out := run(t, "show", "--json", "3eb")

	var n note.Note
	assert := assert.New(t)
	assert.NoError(json.Unmarshal([]byte(out), &n))
	assert.Equal(note.EDO12(note.Name("3eb")), n)
}

func TestShowProtobuf(t *testing.T) {
	out := run(t, "show", "--protobuf", "G#2")

	n, err := pb.Unmarshal([]byte(out))
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("A♭", n.Name)
	assert.Equal(2, n.OctaveIndex)
}

func TestShowHertz(t *testing.T) {
	out := run(t, "show", "--hertz", "261.5")
	assert.Equal(t, "261.500Hz\n", out)
}

func TestShowReference(t *testing.T) {
	out := run(t, "show", "-A", "432", "A4")
	assert.Equal(t, "A4 432.000Hz EDO12\n", out)
}

func TestShowFoldsFullWidth(t *testing.T) {
	out := run(t, "show", "Ｃ＃３")
	assert.Equal(t, "C♯3 138.591Hz EDO12\n", out)
}

func TestJust(t *testing.T) {
	out := run(t, "just", "C#2", "C#3")
	assert.Equal(t, "C♯3 138.591Hz JustIntonation\n\tkey: C♯2 69.296Hz EDO12\n", out)
}

func newContext(strict bool) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Bool("strict", strict, "")
	set.Float64("reference", 440, "")
	return cli.NewContext(nil, set, nil)
}

func TestSpecStrict(t *testing.T) {
	assert := assert.New(t)

	_, err := spec(newContext(true), "A9")
	assert.Error(err)

	s, err := spec(newContext(false), "A9")
	assert.NoError(err)
	assert.Equal(7, note.EDO12(s).OctaveIndex)

	s, err = spec(newContext(true), "A7")
	assert.NoError(err)
	assert.Equal(7, note.EDO12(s).OctaveIndex)
}

func TestShowMIDI(t *testing.T) {
	out := run(t, "show", "--midi", "60", "69")
	assert.Equal(t, "C4 261.626Hz EDO12\nA4 440.000Hz EDO12\n", out)
}

func TestShowMIDIStrict(t *testing.T) {
	exitCode := 0
	orig := cli.OsExiter
	origErr := cli.ErrWriter
	cli.OsExiter = func(code int) { exitCode = code }
	cli.ErrWriter = io.Discard
	defer func() { cli.OsExiter, cli.ErrWriter = orig, origErr }()

	app := cli.NewApp()
	app.Commands = []cli.Command{Show}

	assert := assert.New(t)
	out := captureStdout(t, func() {
		assert.Error(app.Run([]string{"notefreq", "show", "--strict", "--midi", "120"}))
	})
	assert.Equal("", out)
	assert.Equal(1, exitCode)

	out = captureStdout(t, func() {
		assert.NoError(app.Run([]string{"notefreq", "show", "--strict", "--midi", "107"}))
	})
	assert.Equal("B7 3951.066Hz EDO12\n", out)
}

func TestSetLogLevel(t *testing.T) {
	orig := log.Level
	defer func() { log.Level = orig }()

	newLogContext := func(level string, quiet bool) *cli.Context {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.Bool("debug", false, "")
		set.Bool("quiet", quiet, "")
		set.Bool("silent", false, "")
		set.String("log-level", level, "")
		return cli.NewContext(nil, set, nil)
	}

	assert := assert.New(t)
	assert.NoError(setLogLevel(newLogContext("debug", true)))
	assert.Equal(log.LogLevel_Debug, log.Level)

	assert.NoError(setLogLevel(newLogContext("", true)))
	assert.Equal(log.LogLevel_Warn, log.Level)

	assert.Error(setLogLevel(newLogContext("loud", false)))
}
