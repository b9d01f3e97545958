package utfkit

// bom is the encoded form of U+FEFF, the byte order mark.
var bom = [3]byte{0xEF, 0xBB, 0xBF}

// StartsWithBOM reports whether p begins with an encoded byte order
// mark. The mark carries no information in 8-bit text but some writers
// emit it anyway.
func StartsWithBOM(p []byte) bool {
	return len(p) >= 3 && p[0] == bom[0] && p[1] == bom[1] && p[2] == bom[2]
}

// TrimBOM returns p without its leading byte order mark, or p unchanged
// when none is present. The result aliases p.
func TrimBOM(p []byte) []byte {
	if StartsWithBOM(p) {
		return p[3:]
	}
	return p
}
