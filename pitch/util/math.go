package util

import "golang.org/x/exp/constraints"

func Clamp[A constraints.Integer](v, min, max A) A {
	if v < min {
		return min
	}
	if max < v {
		return max
	}
	return v
}

// Mod は、常に [0, n) の範囲を返す剰余です。
func Mod[A constraints.Signed](v, n A) A {
	return (v%n + n) % n
}
