package translation

import "unicode"

// cjkIdeographs is the CJK Unified Ideographs block, U+4E00 to U+9FFF
var cjkIdeographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
	},
}

// ContainsCJK reports whether text contains at least one CJK unified ideograph
func ContainsCJK(text string) bool {
	for _, r := range text {
		if unicode.Is(cjkIdeographs, r) {
			return true
		}
	}
	return false
}
