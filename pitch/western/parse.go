package western

import (
	"strings"
	"unicode"
)

// Parse は、"3E♭" や "C#2" のような音名の文字列を Attributes に分解します。
//
// 文字を先頭から順に見ていき、
// 数字はオクターブ (後に現れたものが優先)、
// ♭ ♮ ♯ # は変化記号、
// A〜G は音名 (H は B の別名) として扱います。
// 先頭以外の小文字 b は音名 B ではなく ♭ とみなします。
// それ以外の文字は無視します。
func Parse(s string) Attributes {
	var a Attributes
	for i, r := range []rune(s) {
		switch {
		case '0' <= r && r <= '9':
			a.Octave = Octave(int(r - '0'))
		case strings.ContainsRune("♭♮♯#", r):
			a.Modifier = string(r)
		case strings.ContainsRune("ABCDEFGH", unicode.ToUpper(r)):
			switch {
			case unicode.ToUpper(r) == 'H':
				a.Letter = "B"
			case r == 'b' && 0 < i:
				a.Modifier = "♭"
			default:
				a.Letter = string(unicode.ToUpper(r))
			}
		}
	}
	return a
}
