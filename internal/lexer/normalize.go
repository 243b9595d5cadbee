package lexer

import "bytes"

// bomUTF8 is the UTF-8 Byte Order Mark some TPTP problem files carry when
// exported from Windows-authored tooling.
var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips a leading UTF-8 BOM so that byte-identical TPTP source
// produces identical token streams regardless of whether the file was
// saved with one.
func Normalize(src []byte) []byte {
	return bytes.TrimPrefix(src, bomUTF8)
}
