// Package sliceops holds small byte-slice helpers shared by the codecs.
package sliceops

// SwapBuf returns a reversed copy of in. UUIDs travel the air little
// endian but print big endian, so both the UUID and advertising codecs
// need this.
func SwapBuf(in []byte) []byte {
	a := make([]byte, len(in))
	copy(a, in)
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
	return a
}
