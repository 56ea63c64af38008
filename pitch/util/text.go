package util

import (
	"regexp"

	"golang.org/x/text/width"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

// FoldWidth は、全角英数字・記号を半角に畳み込みます。
// "Ｃ＃３" は "C#3" になります。♭ ♮ ♯ はそのまま残ります。
func FoldWidth(s string) string {
	return width.Fold.String(s)
}
