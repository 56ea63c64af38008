package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

type LogLevel int

const (
	LogLevel_None LogLevel = iota
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

var levelNames = []string{"none", "warn", "info", "debug"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel は、"none", "warn", "info", "debug" のいずれかを LogLevel に変換します。
func ParseLevel(s string) (LogLevel, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(i), nil
		}
	}
	return LogLevel_Info, errors.Errorf("unknown log level %q", s)
}

var Level LogLevel = LogLevel_Info

var Output io.Writer = os.Stderr

var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(Output, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(Output, f+"\n", args...)
	}
}

var depth int32

// Debugf は、Enter で深くなった分だけ字下げして出力します。
func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		d := int(atomic.LoadInt32(&depth))
		if d < 0 {
			d = 0
		}
		cyan.Fprintf(Output, strings.Repeat("  ", d)+f+"\n", args...)
	}
}

// Enter と Leave は、主音から個々の音を解決するような入れ子の処理を Debugf で見やすくします。
func Enter() {
	atomic.AddInt32(&depth, 1)
}

func Leave() {
	atomic.AddInt32(&depth, -1)
}
