// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"math"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	gunsafe "github.com/quadscreen/quadscreen/internal/unsafe"
)

var (
	LibGLESv2                  = windows.NewLazyDLL("libGLESv2.dll")
	_glActiveTexture           = LibGLESv2.NewProc("glActiveTexture")
	_glAttachShader            = LibGLESv2.NewProc("glAttachShader")
	_glBindBuffer              = LibGLESv2.NewProc("glBindBuffer")
	_glBindTexture             = LibGLESv2.NewProc("glBindTexture")
	_glBindVertexArray         = LibGLESv2.NewProc("glBindVertexArray")
	_glBufferData              = LibGLESv2.NewProc("glBufferData")
	_glClear                   = LibGLESv2.NewProc("glClear")
	_glClearColor              = LibGLESv2.NewProc("glClearColor")
	_glCompileShader           = LibGLESv2.NewProc("glCompileShader")
	_glCreateProgram           = LibGLESv2.NewProc("glCreateProgram")
	_glCreateShader            = LibGLESv2.NewProc("glCreateShader")
	_glDrawElements            = LibGLESv2.NewProc("glDrawElements")
	_glEnableVertexAttribArray = LibGLESv2.NewProc("glEnableVertexAttribArray")
	_glGenBuffers              = LibGLESv2.NewProc("glGenBuffers")
	_glGenTextures             = LibGLESv2.NewProc("glGenTextures")
	_glGenVertexArrays         = LibGLESv2.NewProc("glGenVertexArrays")
	_glGenerateMipmap          = LibGLESv2.NewProc("glGenerateMipmap")
	_glGetAttribLocation       = LibGLESv2.NewProc("glGetAttribLocation")
	_glGetError                = LibGLESv2.NewProc("glGetError")
	_glGetProgramiv            = LibGLESv2.NewProc("glGetProgramiv")
	_glGetProgramInfoLog       = LibGLESv2.NewProc("glGetProgramInfoLog")
	_glGetShaderiv             = LibGLESv2.NewProc("glGetShaderiv")
	_glGetShaderInfoLog        = LibGLESv2.NewProc("glGetShaderInfoLog")
	_glGetString               = LibGLESv2.NewProc("glGetString")
	_glGetUniformLocation      = LibGLESv2.NewProc("glGetUniformLocation")
	_glLinkProgram             = LibGLESv2.NewProc("glLinkProgram")
	_glShaderSource            = LibGLESv2.NewProc("glShaderSource")
	_glTexImage2D              = LibGLESv2.NewProc("glTexImage2D")
	_glTexParameteri           = LibGLESv2.NewProc("glTexParameteri")
	_glTexSubImage2D           = LibGLESv2.NewProc("glTexSubImage2D")
	_glUniform1i               = LibGLESv2.NewProc("glUniform1i")
	_glUseProgram              = LibGLESv2.NewProc("glUseProgram")
	_glVertexAttribPointer     = LibGLESv2.NewProc("glVertexAttribPointer")
	_glViewport                = LibGLESv2.NewProc("glViewport")
)

type Functions struct {
	// Query cache.
	int32s [1]int32
}

// Context must be nil; the GL context is assumed current.
type Context interface{}

func NewFunctions(ctx Context) (*Functions, error) {
	if ctx != nil {
		panic("non-nil context")
	}
	if err := LibGLESv2.Load(); err != nil {
		return nil, err
	}
	return new(Functions), nil
}

func (c *Functions) ActiveTexture(t Enum) {
	syscall.Syscall(_glActiveTexture.Addr(), 1, uintptr(t), 0, 0)
}
func (c *Functions) AttachShader(p Program, s Shader) {
	syscall.Syscall(_glAttachShader.Addr(), 2, uintptr(p.V), uintptr(s.V), 0)
}
func (c *Functions) BindBuffer(target Enum, b Buffer) {
	syscall.Syscall(_glBindBuffer.Addr(), 2, uintptr(target), uintptr(b.V), 0)
}
func (c *Functions) BindTexture(target Enum, t Texture) {
	syscall.Syscall(_glBindTexture.Addr(), 2, uintptr(target), uintptr(t.V), 0)
}
func (c *Functions) BindVertexArray(a VertexArray) {
	syscall.Syscall(_glBindVertexArray.Addr(), 1, uintptr(a.V), 0, 0)
}
func (c *Functions) BufferData(target Enum, size int, usage Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	syscall.Syscall6(_glBufferData.Addr(), 4, uintptr(target), uintptr(size), uintptr(p), uintptr(usage), 0, 0)
	issue34474KeepAlive(p)
}
func (c *Functions) Clear(mask Enum) {
	syscall.Syscall(_glClear.Addr(), 1, uintptr(mask), 0, 0)
}
func (c *Functions) ClearColor(red, green, blue, alpha float32) {
	syscall.Syscall6(_glClearColor.Addr(), 4, uintptr(math.Float32bits(red)), uintptr(math.Float32bits(green)), uintptr(math.Float32bits(blue)), uintptr(math.Float32bits(alpha)), 0, 0)
}
func (c *Functions) CompileShader(s Shader) {
	syscall.Syscall(_glCompileShader.Addr(), 1, uintptr(s.V), 0, 0)
}
func (c *Functions) CreateBuffer() Buffer {
	var buf uintptr
	syscall.Syscall(_glGenBuffers.Addr(), 2, 1, uintptr(unsafe.Pointer(&buf)), 0)
	return Buffer{uint(buf)}
}
func (c *Functions) CreateProgram() Program {
	p, _, _ := syscall.Syscall(_glCreateProgram.Addr(), 0, 0, 0, 0)
	return Program{uint(p)}
}
func (c *Functions) CreateShader(ty Enum) Shader {
	s, _, _ := syscall.Syscall(_glCreateShader.Addr(), 1, uintptr(ty), 0, 0)
	return Shader{uint(s)}
}
func (c *Functions) CreateTexture() Texture {
	var t uintptr
	syscall.Syscall(_glGenTextures.Addr(), 2, 1, uintptr(unsafe.Pointer(&t)), 0)
	return Texture{uint(t)}
}
func (c *Functions) CreateVertexArray() VertexArray {
	var t uintptr
	syscall.Syscall(_glGenVertexArrays.Addr(), 2, 1, uintptr(unsafe.Pointer(&t)), 0)
	return VertexArray{uint(t)}
}
func (c *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	syscall.Syscall6(_glDrawElements.Addr(), 4, uintptr(mode), uintptr(count), uintptr(ty), uintptr(offset), 0, 0)
}
func (c *Functions) EnableVertexAttribArray(a Attrib) {
	syscall.Syscall(_glEnableVertexAttribArray.Addr(), 1, uintptr(a), 0, 0)
}
func (c *Functions) GenerateMipmap(target Enum) {
	syscall.Syscall(_glGenerateMipmap.Addr(), 1, uintptr(target), 0, 0)
}
func (c *Functions) GetAttribLocation(p Program, name string) int {
	cname := gunsafe.CString(name)
	c0 := &cname[0]
	a, _, _ := syscall.Syscall(_glGetAttribLocation.Addr(), 2, uintptr(p.V), uintptr(unsafe.Pointer(c0)), 0)
	issue34474KeepAlive(c0)
	return int(int32(a))
}
func (c *Functions) GetError() Enum {
	e, _, _ := syscall.Syscall(_glGetError.Addr(), 0, 0, 0, 0)
	return Enum(e)
}
func (c *Functions) GetProgrami(p Program, pname Enum) int {
	syscall.Syscall(_glGetProgramiv.Addr(), 3, uintptr(p.V), uintptr(pname), uintptr(unsafe.Pointer(&c.int32s[0])))
	return int(c.int32s[0])
}
func (c *Functions) GetProgramInfoLog(p Program) string {
	n := c.GetProgrami(p, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	syscall.Syscall6(_glGetProgramInfoLog.Addr(), 4, uintptr(p.V), uintptr(len(buf)), 0, uintptr(unsafe.Pointer(&buf[0])), 0, 0)
	return gunsafe.GoString(buf)
}
func (c *Functions) GetShaderi(s Shader, pname Enum) int {
	syscall.Syscall(_glGetShaderiv.Addr(), 3, uintptr(s.V), uintptr(pname), uintptr(unsafe.Pointer(&c.int32s[0])))
	return int(c.int32s[0])
}
func (c *Functions) GetShaderInfoLog(s Shader) string {
	n := c.GetShaderi(s, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	syscall.Syscall6(_glGetShaderInfoLog.Addr(), 4, uintptr(s.V), uintptr(len(buf)), 0, uintptr(unsafe.Pointer(&buf[0])), 0, 0)
	return gunsafe.GoString(buf)
}
func (c *Functions) GetString(pname Enum) string {
	s, _, _ := syscall.Syscall(_glGetString.Addr(), 1, uintptr(pname), 0, 0)
	return windows.BytePtrToString((*byte)(unsafe.Pointer(s)))
}
func (c *Functions) GetUniformLocation(p Program, name string) Uniform {
	cname := gunsafe.CString(name)
	c0 := &cname[0]
	u, _, _ := syscall.Syscall(_glGetUniformLocation.Addr(), 2, uintptr(p.V), uintptr(unsafe.Pointer(c0)), 0)
	issue34474KeepAlive(c0)
	return Uniform{int(int32(u))}
}
func (c *Functions) LinkProgram(p Program) {
	syscall.Syscall(_glLinkProgram.Addr(), 1, uintptr(p.V), 0, 0)
}
func (c *Functions) ShaderSource(s Shader, src string) {
	var pin runtime.Pinner
	defer pin.Unpin()
	arr := sourceArray(&pin, src)
	syscall.Syscall6(_glShaderSource.Addr(), 4, uintptr(s.V), 1, uintptr(unsafe.Pointer(arr)), 0, 0, 0)
}
func (c *Functions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	syscall.Syscall9(_glTexImage2D.Addr(), 9, uintptr(target), uintptr(level), uintptr(internalFormat), uintptr(width), uintptr(height), 0, uintptr(format), uintptr(ty), uintptr(p))
	issue34474KeepAlive(p)
}
func (c *Functions) TexParameteri(target, pname Enum, param int) {
	syscall.Syscall(_glTexParameteri.Addr(), 3, uintptr(target), uintptr(pname), uintptr(param))
}
func (c *Functions) TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte) {
	d0 := &data[0]
	syscall.Syscall9(_glTexSubImage2D.Addr(), 9, uintptr(target), uintptr(level), uintptr(x), uintptr(y), uintptr(width), uintptr(height), uintptr(format), uintptr(ty), uintptr(unsafe.Pointer(d0)))
	issue34474KeepAlive(d0)
}
func (c *Functions) Uniform1i(dst Uniform, v int) {
	syscall.Syscall(_glUniform1i.Addr(), 2, uintptr(dst.V), uintptr(v), 0)
}
func (c *Functions) UseProgram(p Program) {
	syscall.Syscall(_glUseProgram.Addr(), 1, uintptr(p.V), 0, 0)
}
func (c *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	var norm uintptr
	if normalized {
		norm = 1
	}
	syscall.Syscall6(_glVertexAttribPointer.Addr(), 6, uintptr(dst), uintptr(size), uintptr(ty), norm, uintptr(stride), uintptr(offset))
}
func (c *Functions) Viewport(x, y, width, height int) {
	syscall.Syscall6(_glViewport.Addr(), 4, uintptr(x), uintptr(y), uintptr(width), uintptr(height), 0, 0)
}

// issue34474KeepAlive calls runtime.KeepAlive as a
// workaround for golang.org/issue/34474.
func issue34474KeepAlive(v interface{}) {
	runtime.KeepAlive(v)
}
