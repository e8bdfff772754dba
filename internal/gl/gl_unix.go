// SPDX-License-Identifier: Unlicense OR MIT

//go:build (darwin || freebsd || linux) && !android
// +build darwin freebsd linux
// +build !android

package gl

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	gunsafe "github.com/quadscreen/quadscreen/internal/unsafe"
)

// Functions calls the GL entry points of the system library. The
// caller owns the GL context and must keep it current on the calling
// thread.
type Functions struct {
	glActiveTexture           func(texture uint32)
	glAttachShader            func(program, shader uint32)
	glBindBuffer              func(target, buffer uint32)
	glBindTexture             func(target, texture uint32)
	glBindVertexArray         func(array uint32)
	glBufferData              func(target uint32, size int, data unsafe.Pointer, usage uint32)
	glClear                   func(mask uint32)
	glClearColor              func(red, green, blue, alpha float32)
	glCompileShader           func(shader uint32)
	glCreateProgram           func() uint32
	glCreateShader            func(ty uint32) uint32
	glDrawElements            func(mode uint32, count int32, ty uint32, offset uintptr)
	glEnableVertexAttribArray func(index uint32)
	glGenBuffers              func(n int32, buffers *uint32)
	glGenTextures             func(n int32, textures *uint32)
	glGenVertexArrays         func(n int32, arrays *uint32)
	glGenerateMipmap          func(target uint32)
	glGetAttribLocation       func(program uint32, name string) int32
	glGetError                func() uint32
	glGetProgramInfoLog       func(program uint32, bufSize int32, length *int32, log *byte)
	glGetProgramiv            func(program, pname uint32, params *int32)
	glGetShaderInfoLog        func(shader uint32, bufSize int32, length *int32, log *byte)
	glGetShaderiv             func(shader, pname uint32, params *int32)
	glGetString               func(name uint32) string
	glGetUniformLocation      func(program uint32, name string) int32
	glLinkProgram             func(program uint32)
	glShaderSource            func(shader uint32, count int32, src **byte, length *int32)
	glTexImage2D              func(target uint32, level, internalFormat, width, height, border int32, format, ty uint32, data unsafe.Pointer)
	glTexParameteri           func(target, pname uint32, param int32)
	glTexSubImage2D           func(target uint32, level, x, y, width, height int32, format, ty uint32, data unsafe.Pointer)
	glUniform1i               func(location, v int32)
	glUseProgram              func(program uint32)
	glVertexAttribPointer     func(index uint32, size int32, ty uint32, normalized bool, stride int32, offset uintptr)
	glViewport                func(x, y, width, height int32)

	// Query cache.
	int32s [1]int32
}

// Context must be nil; the GL context is assumed current.
type Context interface{}

var libNames = map[string][]string{
	"darwin":  {"/System/Library/Frameworks/OpenGL.framework/OpenGL"},
	"freebsd": {"libGL.so.1", "libGL.so"},
	"linux":   {"libGLESv2.so.2", "libGL.so.1", "libGL.so"},
}

func NewFunctions(ctx Context) (*Functions, error) {
	if ctx != nil {
		panic("non-nil context")
	}
	lib, err := openLib()
	if err != nil {
		return nil, err
	}
	f := new(Functions)
	if err := f.load(lib); err != nil {
		return nil, err
	}
	return f, nil
}

func openLib() (uintptr, error) {
	var errs []error
	for _, name := range libNames[runtime.GOOS] {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
		errs = append(errs, err)
	}
	return 0, fmt.Errorf("gl: no GL library found: %w", errors.Join(errs...))
}

func (f *Functions) load(lib uintptr) error {
	syms := []struct {
		fptr interface{}
		name string
	}{
		{&f.glActiveTexture, "glActiveTexture"},
		{&f.glAttachShader, "glAttachShader"},
		{&f.glBindBuffer, "glBindBuffer"},
		{&f.glBindTexture, "glBindTexture"},
		{&f.glBindVertexArray, "glBindVertexArray"},
		{&f.glBufferData, "glBufferData"},
		{&f.glClear, "glClear"},
		{&f.glClearColor, "glClearColor"},
		{&f.glCompileShader, "glCompileShader"},
		{&f.glCreateProgram, "glCreateProgram"},
		{&f.glCreateShader, "glCreateShader"},
		{&f.glDrawElements, "glDrawElements"},
		{&f.glEnableVertexAttribArray, "glEnableVertexAttribArray"},
		{&f.glGenBuffers, "glGenBuffers"},
		{&f.glGenTextures, "glGenTextures"},
		{&f.glGenVertexArrays, "glGenVertexArrays"},
		{&f.glGenerateMipmap, "glGenerateMipmap"},
		{&f.glGetAttribLocation, "glGetAttribLocation"},
		{&f.glGetError, "glGetError"},
		{&f.glGetProgramInfoLog, "glGetProgramInfoLog"},
		{&f.glGetProgramiv, "glGetProgramiv"},
		{&f.glGetShaderInfoLog, "glGetShaderInfoLog"},
		{&f.glGetShaderiv, "glGetShaderiv"},
		{&f.glGetString, "glGetString"},
		{&f.glGetUniformLocation, "glGetUniformLocation"},
		{&f.glLinkProgram, "glLinkProgram"},
		{&f.glShaderSource, "glShaderSource"},
		{&f.glTexImage2D, "glTexImage2D"},
		{&f.glTexParameteri, "glTexParameteri"},
		{&f.glTexSubImage2D, "glTexSubImage2D"},
		{&f.glUniform1i, "glUniform1i"},
		{&f.glUseProgram, "glUseProgram"},
		{&f.glVertexAttribPointer, "glVertexAttribPointer"},
		{&f.glViewport, "glViewport"},
	}
	for _, s := range syms {
		addr, err := purego.Dlsym(lib, s.name)
		if err != nil {
			return fmt.Errorf("gl: %s: %w", s.name, err)
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	return nil
}

func (f *Functions) ActiveTexture(t Enum) {
	f.glActiveTexture(uint32(t))
}
func (f *Functions) AttachShader(p Program, s Shader) {
	f.glAttachShader(uint32(p.V), uint32(s.V))
}
func (f *Functions) BindBuffer(target Enum, b Buffer) {
	f.glBindBuffer(uint32(target), uint32(b.V))
}
func (f *Functions) BindTexture(target Enum, t Texture) {
	f.glBindTexture(uint32(target), uint32(t.V))
}
func (f *Functions) BindVertexArray(a VertexArray) {
	f.glBindVertexArray(uint32(a.V))
}
func (f *Functions) BufferData(target Enum, size int, usage Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.glBufferData(uint32(target), size, p, uint32(usage))
	runtime.KeepAlive(data)
}
func (f *Functions) Clear(mask Enum) {
	f.glClear(uint32(mask))
}
func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.glClearColor(red, green, blue, alpha)
}
func (f *Functions) CompileShader(s Shader) {
	f.glCompileShader(uint32(s.V))
}
func (f *Functions) CreateBuffer() Buffer {
	var b uint32
	f.glGenBuffers(1, &b)
	return Buffer{uint(b)}
}
func (f *Functions) CreateProgram() Program {
	return Program{uint(f.glCreateProgram())}
}
func (f *Functions) CreateShader(ty Enum) Shader {
	return Shader{uint(f.glCreateShader(uint32(ty)))}
}
func (f *Functions) CreateTexture() Texture {
	var t uint32
	f.glGenTextures(1, &t)
	return Texture{uint(t)}
}
func (f *Functions) CreateVertexArray() VertexArray {
	var a uint32
	f.glGenVertexArrays(1, &a)
	return VertexArray{uint(a)}
}
func (f *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	f.glDrawElements(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}
func (f *Functions) EnableVertexAttribArray(a Attrib) {
	f.glEnableVertexAttribArray(uint32(a))
}
func (f *Functions) GenerateMipmap(target Enum) {
	f.glGenerateMipmap(uint32(target))
}
func (f *Functions) GetAttribLocation(p Program, name string) int {
	return int(f.glGetAttribLocation(uint32(p.V), name))
}
func (f *Functions) GetError() Enum {
	return Enum(f.glGetError())
}
func (f *Functions) GetProgrami(p Program, pname Enum) int {
	f.glGetProgramiv(uint32(p.V), uint32(pname), &f.int32s[0])
	return int(f.int32s[0])
}
func (f *Functions) GetProgramInfoLog(p Program) string {
	n := f.GetProgrami(p, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	f.glGetProgramInfoLog(uint32(p.V), int32(len(buf)), nil, &buf[0])
	return gunsafe.GoString(buf)
}
func (f *Functions) GetShaderi(s Shader, pname Enum) int {
	f.glGetShaderiv(uint32(s.V), uint32(pname), &f.int32s[0])
	return int(f.int32s[0])
}
func (f *Functions) GetShaderInfoLog(s Shader) string {
	n := f.GetShaderi(s, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	f.glGetShaderInfoLog(uint32(s.V), int32(len(buf)), nil, &buf[0])
	return gunsafe.GoString(buf)
}
func (f *Functions) GetString(pname Enum) string {
	return f.glGetString(uint32(pname))
}
func (f *Functions) GetUniformLocation(p Program, name string) Uniform {
	return Uniform{int(f.glGetUniformLocation(uint32(p.V), name))}
}
func (f *Functions) LinkProgram(p Program) {
	f.glLinkProgram(uint32(p.V))
}
func (f *Functions) ShaderSource(s Shader, src string) {
	var pin runtime.Pinner
	defer pin.Unpin()
	f.glShaderSource(uint32(s.V), 1, sourceArray(&pin, src), nil)
}
func (f *Functions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.glTexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
}
func (f *Functions) TexParameteri(target, pname Enum, param int) {
	f.glTexParameteri(uint32(target), uint32(pname), int32(param))
}
func (f *Functions) TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte) {
	f.glTexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
	runtime.KeepAlive(data)
}
func (f *Functions) Uniform1i(dst Uniform, v int) {
	f.glUniform1i(int32(dst.V), int32(v))
}
func (f *Functions) UseProgram(p Program) {
	f.glUseProgram(uint32(p.V))
}
func (f *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	f.glVertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}
func (f *Functions) Viewport(x, y, width, height int) {
	f.glViewport(int32(x), int32(y), int32(width), int32(height))
}
