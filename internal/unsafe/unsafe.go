// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of element types that can back a GPU buffer.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// BytesView returns a byte slice view of a slice, in native byte order.
// The view aliases s.
func BytesView[T Numeric](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	sz := int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*sz)
}

// CString returns a NUL-terminated copy of s.
func CString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GoString convert a NUL-terminated C string
// to a Go string.
func GoString(s []byte) string {
	for i, v := range s {
		if v == 0 {
			return string(s[:i])
		}
	}
	return string(s)
}
