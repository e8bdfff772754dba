// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"runtime"

	gunsafe "github.com/quadscreen/quadscreen/internal/unsafe"
)

// sourceArray returns a single element array of NUL-terminated
// strings holding src, as glShaderSource takes it. Both the array and
// the string stay pinned until pin is unpinned, so the array may be
// passed to C.
func sourceArray(pin *runtime.Pinner, src string) **byte {
	csrc := gunsafe.CString(src)
	arr := new(*byte)
	*arr = &csrc[0]
	pin.Pin(&csrc[0])
	pin.Pin(arr)
	return arr
}
