// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ARRAY_BUFFER          = 0x8892
	CLAMP_TO_EDGE         = 0x812f
	COLOR_BUFFER_BIT      = 0x4000
	COMPILE_STATUS        = 0x8b81
	ELEMENT_ARRAY_BUFFER  = 0x8893
	EXTENSIONS            = 0x1f03
	FALSE                 = 0
	FLOAT                 = 0x1406
	FRAGMENT_SHADER       = 0x8b30
	INFO_LOG_LENGTH       = 0x8B84
	INVALID_ENUM          = 0x0500
	INVALID_OPERATION     = 0x0502
	INVALID_VALUE         = 0x0501
	LINEAR                = 0x2601
	LINK_STATUS           = 0x8b82
	MAX_TEXTURE_SIZE      = 0xd33
	NEAREST               = 0x2600
	NEAREST_MIPMAP_LINEAR = 0x2702
	NO_ERROR              = 0x0
	REPEAT                = 0x2901
	RGBA                  = 0x1908
	STATIC_DRAW           = 0x88e4
	TEXTURE_2D            = 0xde1
	TEXTURE_MAG_FILTER    = 0x2800
	TEXTURE_MIN_FILTER    = 0x2801
	TEXTURE_WRAP_S        = 0x2802
	TEXTURE_WRAP_T        = 0x2803
	TEXTURE0              = 0x84c0
	TRIANGLE_STRIP        = 0x5
	TRIANGLES             = 0x4
	TRUE                  = 1
	UNPACK_ALIGNMENT      = 0xcf5
	UNSIGNED_BYTE         = 0x1401
	UNSIGNED_INT          = 0x1405
	UNSIGNED_SHORT        = 0x1403
	VERSION               = 0x1f02
	VERTEX_SHADER         = 0x8b31
)
