// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

// Package gltest implements the GL entry points of the display
// pipeline in software. It keeps object state the way a GL ES
// implementation does, records every call and raises the GL errors
// real drivers raise for misuse, so that pipeline code can be tested
// and dry-run without a GPU.
package gltest

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"github.com/quadscreen/quadscreen/internal/gl"
)

const (
	maxVertexAttribs = 8
	maxTextureUnits  = 8
)

// Functions is a software GL context.
type Functions struct {
	// Version is reported for GL_VERSION.
	Version string
	// Fail names Create* entry points that return the zero object, as
	// drivers do when out of resources.
	Fail map[string]bool

	calls []string
	draws []Draw
	next  uint
	err   gl.Enum

	buffers  map[uint]*buffer
	shaders  map[uint]*shader
	programs map[uint]*program
	textures map[uint]*texture
	arrays   map[uint]bool

	arrayBuf   uint
	elemBuf    uint
	prog       uint
	vertArray  uint
	activeUnit int
	units      [maxTextureUnits]uint
	attribs    [maxVertexAttribs]attrib
	clearColor [4]float32
	viewport   [4]int
	clearCount int
}

// Draw describes a successful DrawElements call.
type Draw struct {
	Mode    gl.Enum
	Count   int
	Type    gl.Enum
	Offset  int
	Program gl.Program
	// Indices are the vertex indices read from the element buffer.
	Indices []uint32
	// Sampler is the texture unit of the first sampler uniform, or -1.
	Sampler int
	// Texture is the texture bound to the sampler unit.
	Texture gl.Texture
	// Complete reports whether Texture was complete for sampling.
	Complete bool
}

type buffer struct {
	target gl.Enum
	usage  gl.Enum
	data   []byte
}

type shader struct {
	typ      gl.Enum
	src      string
	compiled bool
	log      string
	tu       translationUnit
}

type program struct {
	attached []uint
	linked   bool
	log      string
	attribs  map[string]int
	uniforms map[string]int
	samplers []int
	values   map[int]int
}

type texture struct {
	width, height int
	levels        int
	params        map[gl.Enum]int
	pix           []byte
}

type attrib struct {
	enabled    bool
	buf        uint
	size       int
	typ        gl.Enum
	normalized bool
	stride     int
	offset     int
}

// New returns a context reporting version, such as "OpenGL ES 3.0",
// "WebGL 1.0" or "4.1 Core".
func New(version string) *Functions {
	return &Functions{
		Version:  version,
		buffers:  make(map[uint]*buffer),
		shaders:  make(map[uint]*shader),
		programs: make(map[uint]*program),
		textures: make(map[uint]*texture),
		arrays:   make(map[uint]bool),
	}
}

// Calls returns the trace of GL calls made so far.
func (f *Functions) Calls() []string {
	return f.calls
}

// Draws returns the draw calls that passed validation.
func (f *Functions) Draws() []Draw {
	return f.draws
}

// ClearColorValue returns the current clear color.
func (f *Functions) ClearColorValue() [4]float32 {
	return f.clearColor
}

// ViewportValue returns the current viewport as x, y, width, height.
func (f *Functions) ViewportValue() [4]int {
	return f.viewport
}

// BufferContents returns the data store of b.
func (f *Functions) BufferContents(b gl.Buffer) []byte {
	if buf, ok := f.buffers[b.V]; ok {
		return buf.data
	}
	return nil
}

// BoundBuffer returns the buffer bound to target.
func (f *Functions) BoundBuffer(target gl.Enum) gl.Buffer {
	switch target {
	case gl.ARRAY_BUFFER:
		return gl.Buffer{V: f.arrayBuf}
	case gl.ELEMENT_ARRAY_BUFFER:
		return gl.Buffer{V: f.elemBuf}
	}
	return gl.Buffer{}
}

// TexParameter returns the value of a texture parameter of t.
func (f *Functions) TexParameter(t gl.Texture, pname gl.Enum) int {
	if tex, ok := f.textures[t.V]; ok {
		return tex.params[pname]
	}
	return 0
}

// MipLevels returns the number of defined mip levels of t.
func (f *Functions) MipLevels(t gl.Texture) int {
	if tex, ok := f.textures[t.V]; ok {
		return tex.levels
	}
	return 0
}

// Image returns a copy of mip level 0 of t. Row 0 of the image is the
// first row uploaded.
func (f *Functions) Image(t gl.Texture) *image.RGBA {
	tex, ok := f.textures[t.V]
	if !ok || tex.pix == nil {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, tex.width, tex.height))
	copy(img.Pix, tex.pix)
	return img
}

// Texel returns the texel at (x, y) of mip level 0 of t.
func (f *Functions) Texel(t gl.Texture, x, y int) color.RGBA {
	tex, ok := f.textures[t.V]
	if !ok || x < 0 || y < 0 || x >= tex.width || y >= tex.height {
		return color.RGBA{}
	}
	o := (y*tex.width + x) * 4
	p := tex.pix[o : o+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Uniform returns the value last set for the uniform at loc of p.
func (f *Functions) Uniform(p gl.Program, loc gl.Uniform) (int, bool) {
	prog, ok := f.programs[p.V]
	if !ok {
		return 0, false
	}
	v, ok := prog.values[loc.V]
	return v, ok
}

func (f *Functions) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// fail records the first error since the last GetError.
func (f *Functions) fail(e gl.Enum) {
	if f.err == gl.NO_ERROR {
		f.err = e
	}
}

func (f *Functions) alloc() uint {
	f.next++
	return f.next
}

func (f *Functions) es2() bool {
	ver, gles, err := gl.ParseGLVersion(f.Version)
	return err == nil && gles && ver[0] < 3
}

func (f *Functions) core() bool {
	ver, gles, err := gl.ParseGLVersion(f.Version)
	return err == nil && !gles && ver[0] >= 3
}

func (f *Functions) ActiveTexture(t gl.Enum) {
	f.record("glActiveTexture(%s)", enumString(t))
	unit := int(t) - int(gl.TEXTURE0)
	if unit < 0 || unit >= maxTextureUnits {
		f.fail(gl.INVALID_ENUM)
		return
	}
	f.activeUnit = unit
}

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	f.record("glAttachShader(%d, %d)", p.V, s.V)
	prog, ok := f.programs[p.V]
	sh, ok2 := f.shaders[s.V]
	if !ok || !ok2 {
		f.fail(gl.INVALID_VALUE)
		return
	}
	for _, id := range prog.attached {
		if id == s.V || f.shaders[id].typ == sh.typ {
			f.fail(gl.INVALID_OPERATION)
			return
		}
	}
	prog.attached = append(prog.attached, s.V)
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("glBindBuffer(%s, %d)", enumString(target), b.V)
	var dst *uint
	switch target {
	case gl.ARRAY_BUFFER:
		dst = &f.arrayBuf
	case gl.ELEMENT_ARRAY_BUFFER:
		dst = &f.elemBuf
	default:
		f.fail(gl.INVALID_ENUM)
		return
	}
	if b.V != 0 {
		buf, ok := f.buffers[b.V]
		if !ok {
			f.fail(gl.INVALID_OPERATION)
			return
		}
		// A buffer keeps the target of its first binding, as in WebGL.
		if buf.target == 0 {
			buf.target = target
		} else if buf.target != target {
			f.fail(gl.INVALID_OPERATION)
			return
		}
	}
	*dst = b.V
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("glBindTexture(%s, %d)", enumString(target), t.V)
	if target != gl.TEXTURE_2D {
		f.fail(gl.INVALID_ENUM)
		return
	}
	if _, ok := f.textures[t.V]; t.V != 0 && !ok {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	f.units[f.activeUnit] = t.V
}

func (f *Functions) BindVertexArray(a gl.VertexArray) {
	f.record("glBindVertexArray(%d)", a.V)
	if a.V != 0 && !f.arrays[a.V] {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	f.vertArray = a.V
}

func (f *Functions) BufferData(target gl.Enum, size int, usage gl.Enum, data []byte) {
	f.record("glBufferData(%s, %d, %s)", enumString(target), size, enumString(usage))
	if usage != gl.STATIC_DRAW {
		f.fail(gl.INVALID_ENUM)
		return
	}
	if size < 0 || (data != nil && len(data) < size) {
		f.fail(gl.INVALID_VALUE)
		return
	}
	buf, ok := f.buffers[f.BoundBuffer(target).V]
	if !ok {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	buf.usage = usage
	buf.data = make([]byte, size)
	copy(buf.data, data)
}

func (f *Functions) Clear(mask gl.Enum) {
	f.record("glClear(%s)", enumString(mask))
	if mask&^gl.COLOR_BUFFER_BIT != 0 {
		f.fail(gl.INVALID_VALUE)
		return
	}
	f.clearCount++
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.record("glClearColor(%g, %g, %g, %g)", red, green, blue, alpha)
	f.clearColor = [4]float32{red, green, blue, alpha}
}

func (f *Functions) CompileShader(s gl.Shader) {
	f.record("glCompileShader(%d)", s.V)
	sh, ok := f.shaders[s.V]
	if !ok {
		f.fail(gl.INVALID_VALUE)
		return
	}
	tu, log := parseGLSL(sh.typ, sh.src)
	sh.tu = tu
	sh.log = log
	sh.compiled = log == ""
}

func (f *Functions) CreateBuffer() gl.Buffer {
	f.record("glCreateBuffer()")
	if f.Fail["CreateBuffer"] {
		return gl.Buffer{}
	}
	id := f.alloc()
	f.buffers[id] = new(buffer)
	return gl.Buffer{V: id}
}

func (f *Functions) CreateProgram() gl.Program {
	f.record("glCreateProgram()")
	if f.Fail["CreateProgram"] {
		return gl.Program{}
	}
	id := f.alloc()
	f.programs[id] = &program{values: make(map[int]int)}
	return gl.Program{V: id}
}

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	f.record("glCreateShader(%s)", enumString(ty))
	if ty != gl.VERTEX_SHADER && ty != gl.FRAGMENT_SHADER {
		f.fail(gl.INVALID_ENUM)
		return gl.Shader{}
	}
	if f.Fail["CreateShader"] {
		return gl.Shader{}
	}
	id := f.alloc()
	f.shaders[id] = &shader{typ: ty}
	return gl.Shader{V: id}
}

func (f *Functions) CreateTexture() gl.Texture {
	f.record("glCreateTexture()")
	if f.Fail["CreateTexture"] {
		return gl.Texture{}
	}
	id := f.alloc()
	f.textures[id] = &texture{
		params: map[gl.Enum]int{
			gl.TEXTURE_WRAP_S:     gl.REPEAT,
			gl.TEXTURE_WRAP_T:     gl.REPEAT,
			gl.TEXTURE_MIN_FILTER: gl.NEAREST_MIPMAP_LINEAR,
			gl.TEXTURE_MAG_FILTER: gl.LINEAR,
		},
	}
	return gl.Texture{V: id}
}

func (f *Functions) CreateVertexArray() gl.VertexArray {
	f.record("glCreateVertexArray()")
	if f.Fail["CreateVertexArray"] {
		return gl.VertexArray{}
	}
	id := f.alloc()
	f.arrays[id] = true
	return gl.VertexArray{V: id}
}

func (f *Functions) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.record("glDrawElements(%s, %d, %s, %d)", enumString(mode), count, enumString(ty), offset)
	if mode != gl.TRIANGLES && mode != gl.TRIANGLE_STRIP {
		f.fail(gl.INVALID_ENUM)
		return
	}
	var size int
	switch ty {
	case gl.UNSIGNED_BYTE:
		size = 1
	case gl.UNSIGNED_SHORT:
		size = 2
	case gl.UNSIGNED_INT:
		size = 4
	default:
		f.fail(gl.INVALID_ENUM)
		return
	}
	if count < 0 || offset < 0 {
		f.fail(gl.INVALID_VALUE)
		return
	}
	prog, ok := f.programs[f.prog]
	if !ok || !prog.linked {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	if f.core() && f.vertArray == 0 {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	elems, ok := f.buffers[f.elemBuf]
	if !ok || offset%size != 0 || offset+count*size > len(elems.data) {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	indices := make([]uint32, count)
	var maxIndex int
	for i := range indices {
		o := offset + i*size
		var v uint32
		switch size {
		case 1:
			v = uint32(elems.data[o])
		case 2:
			v = uint32(binary.NativeEndian.Uint16(elems.data[o:]))
		case 4:
			v = binary.NativeEndian.Uint32(elems.data[o:])
		}
		indices[i] = v
		if int(v) > maxIndex {
			maxIndex = int(v)
		}
	}
	for _, loc := range prog.attribs {
		a := f.attribs[loc]
		if !a.enabled {
			continue
		}
		buf, ok := f.buffers[a.buf]
		if !ok {
			f.fail(gl.INVALID_OPERATION)
			return
		}
		stride := a.stride
		if stride == 0 {
			stride = a.size * 4
		}
		if count > 0 && a.offset+maxIndex*stride+a.size*4 > len(buf.data) {
			f.fail(gl.INVALID_OPERATION)
			return
		}
	}
	d := Draw{
		Mode:    mode,
		Count:   count,
		Type:    ty,
		Offset:  offset,
		Program: gl.Program{V: f.prog},
		Indices: indices,
		Sampler: -1,
	}
	if len(prog.samplers) > 0 {
		unit := prog.values[prog.samplers[0]]
		d.Sampler = unit
		if unit >= 0 && unit < maxTextureUnits {
			d.Texture = gl.Texture{V: f.units[unit]}
			d.Complete = f.complete(f.textures[f.units[unit]])
		}
	}
	f.draws = append(f.draws, d)
}

// complete reports whether tex can be sampled.
func (f *Functions) complete(tex *texture) bool {
	if tex == nil || tex.levels == 0 {
		return false
	}
	switch tex.params[gl.TEXTURE_MIN_FILTER] {
	case gl.NEAREST, gl.LINEAR:
	default:
		if tex.levels < mipLevels(tex.width, tex.height) {
			return false
		}
	}
	if f.es2() && !(pow2(tex.width) && pow2(tex.height)) {
		if tex.params[gl.TEXTURE_WRAP_S] != gl.CLAMP_TO_EDGE || tex.params[gl.TEXTURE_WRAP_T] != gl.CLAMP_TO_EDGE {
			return false
		}
	}
	return true
}

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) {
	f.record("glEnableVertexAttribArray(%d)", a)
	if a >= maxVertexAttribs {
		f.fail(gl.INVALID_VALUE)
		return
	}
	f.attribs[a].enabled = true
}

func (f *Functions) GenerateMipmap(target gl.Enum) {
	f.record("glGenerateMipmap(%s)", enumString(target))
	if target != gl.TEXTURE_2D {
		f.fail(gl.INVALID_ENUM)
		return
	}
	tex, ok := f.textures[f.units[f.activeUnit]]
	if !ok || tex.levels == 0 {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	if f.es2() && !(pow2(tex.width) && pow2(tex.height)) {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	tex.levels = mipLevels(tex.width, tex.height)
}

func (f *Functions) GetAttribLocation(p gl.Program, name string) int {
	f.record("glGetAttribLocation(%d, %q)", p.V, name)
	prog, ok := f.programs[p.V]
	if !ok || !prog.linked {
		f.fail(gl.INVALID_OPERATION)
		return -1
	}
	if loc, ok := prog.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *Functions) GetError() gl.Enum {
	e := f.err
	f.err = gl.NO_ERROR
	return e
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	prog, ok := f.programs[p.V]
	if !ok {
		f.fail(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if prog.linked {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return logLength(prog.log)
	}
	f.fail(gl.INVALID_ENUM)
	return 0
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	if prog, ok := f.programs[p.V]; ok {
		return prog.log
	}
	f.fail(gl.INVALID_VALUE)
	return ""
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	sh, ok := f.shaders[s.V]
	if !ok {
		f.fail(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return logLength(sh.log)
	}
	f.fail(gl.INVALID_ENUM)
	return 0
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	if sh, ok := f.shaders[s.V]; ok {
		return sh.log
	}
	f.fail(gl.INVALID_VALUE)
	return ""
}

func (f *Functions) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VERSION:
		return f.Version
	case gl.EXTENSIONS:
		return ""
	}
	f.fail(gl.INVALID_ENUM)
	return ""
}

func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("glGetUniformLocation(%d, %q)", p.V, name)
	prog, ok := f.programs[p.V]
	if !ok || !prog.linked {
		f.fail(gl.INVALID_OPERATION)
		return gl.Uniform{V: -1}
	}
	if loc, ok := prog.uniforms[name]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.Uniform{V: -1}
}

func (f *Functions) LinkProgram(p gl.Program) {
	f.record("glLinkProgram(%d)", p.V)
	prog, ok := f.programs[p.V]
	if !ok {
		f.fail(gl.INVALID_VALUE)
		return
	}
	prog.linked = false
	prog.attribs = make(map[string]int)
	prog.uniforms = make(map[string]int)
	prog.samplers = nil
	prog.values = make(map[int]int)
	var vert, frag *shader
	for _, id := range prog.attached {
		switch sh := f.shaders[id]; sh.typ {
		case gl.VERTEX_SHADER:
			vert = sh
		case gl.FRAGMENT_SHADER:
			frag = sh
		}
	}
	switch {
	case vert == nil || frag == nil:
		prog.log = "error: program needs a vertex and a fragment shader"
		return
	case !vert.compiled || !frag.compiled:
		prog.log = "error: attached shader is not compiled"
		return
	case !vert.tu.hasMain:
		prog.log = "error: missing main function in vertex shader"
		return
	case !frag.tu.hasMain:
		prog.log = "error: missing main function in fragment shader"
		return
	}
	for _, a := range vert.tu.attribs {
		if !a.active {
			continue
		}
		if len(prog.attribs) == maxVertexAttribs {
			prog.log = "error: too many vertex attributes"
			return
		}
		prog.attribs[a.name] = len(prog.attribs)
	}
	for _, sh := range []*shader{vert, frag} {
		for _, u := range sh.tu.uniforms {
			if _, dup := prog.uniforms[u.name]; dup || !u.active {
				continue
			}
			loc := len(prog.uniforms)
			prog.uniforms[u.name] = loc
			if u.typ == "sampler2D" {
				prog.samplers = append(prog.samplers, loc)
				prog.values[loc] = 0
			}
		}
	}
	prog.log = ""
	prog.linked = true
}

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	f.record("glShaderSource(%d, <%d bytes>)", s.V, len(src))
	sh, ok := f.shaders[s.V]
	if !ok {
		f.fail(gl.INVALID_VALUE)
		return
	}
	sh.src = src
}

func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	f.record("glTexImage2D(%s, %d, %s, %d, %d, %s, %s)", enumString(target), level, enumString(internalFormat), width, height, enumString(format), enumString(ty))
	tex, ok := f.boundTexture(target)
	if !ok {
		return
	}
	if internalFormat != gl.RGBA || format != gl.RGBA || ty != gl.UNSIGNED_BYTE {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	if level != 0 || width <= 0 || height <= 0 {
		f.fail(gl.INVALID_VALUE)
		return
	}
	n := width * height * 4
	if data != nil && len(data) < n {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	tex.width, tex.height = width, height
	tex.levels = 1
	tex.pix = make([]byte, n)
	copy(tex.pix, data)
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	f.record("glTexParameteri(%s, %s, %s)", enumString(target), enumString(pname), enumString(gl.Enum(param)))
	tex, ok := f.boundTexture(target)
	if !ok {
		return
	}
	var valid []gl.Enum
	switch pname {
	case gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T:
		valid = []gl.Enum{gl.REPEAT, gl.CLAMP_TO_EDGE}
	case gl.TEXTURE_MAG_FILTER:
		valid = []gl.Enum{gl.NEAREST, gl.LINEAR}
	case gl.TEXTURE_MIN_FILTER:
		valid = []gl.Enum{gl.NEAREST, gl.LINEAR, gl.NEAREST_MIPMAP_LINEAR}
	default:
		f.fail(gl.INVALID_ENUM)
		return
	}
	for _, v := range valid {
		if gl.Enum(param) == v {
			tex.params[pname] = param
			return
		}
	}
	f.fail(gl.INVALID_ENUM)
}

func (f *Functions) TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("glTexSubImage2D(%s, %d, %d, %d, %d, %d, %s, %s)", enumString(target), level, x, y, width, height, enumString(format), enumString(ty))
	tex, ok := f.boundTexture(target)
	if !ok {
		return
	}
	if format != gl.RGBA || ty != gl.UNSIGNED_BYTE {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	if tex.levels == 0 || level != 0 || x < 0 || y < 0 || width < 0 || height < 0 ||
		x+width > tex.width || y+height > tex.height {
		f.fail(gl.INVALID_VALUE)
		return
	}
	if len(data) < width*height*4 {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	for row := 0; row < height; row++ {
		dst := ((y+row)*tex.width + x) * 4
		src := row * width * 4
		copy(tex.pix[dst:dst+width*4], data[src:src+width*4])
	}
	// Other levels keep stale content until regenerated.
	tex.levels = 1
}

func (f *Functions) boundTexture(target gl.Enum) (*texture, bool) {
	if target != gl.TEXTURE_2D {
		f.fail(gl.INVALID_ENUM)
		return nil, false
	}
	tex, ok := f.textures[f.units[f.activeUnit]]
	if !ok {
		f.fail(gl.INVALID_OPERATION)
		return nil, false
	}
	return tex, true
}

func (f *Functions) Uniform1i(dst gl.Uniform, v int) {
	f.record("glUniform1i(%d, %d)", dst.V, v)
	if dst.V == -1 {
		return
	}
	prog, ok := f.programs[f.prog]
	if !ok || !prog.linked {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	found := false
	for _, loc := range prog.uniforms {
		if loc == dst.V {
			found = true
			break
		}
	}
	if !found {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	prog.values[dst.V] = v
}

func (f *Functions) UseProgram(p gl.Program) {
	f.record("glUseProgram(%d)", p.V)
	if p.V != 0 {
		prog, ok := f.programs[p.V]
		if !ok || !prog.linked {
			f.fail(gl.INVALID_OPERATION)
			return
		}
	}
	f.prog = p.V
}

func (f *Functions) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("glVertexAttribPointer(%d, %d, %s, %t, %d, %d)", dst, size, enumString(ty), normalized, stride, offset)
	if dst >= maxVertexAttribs || size < 1 || size > 4 || stride < 0 || offset < 0 {
		f.fail(gl.INVALID_VALUE)
		return
	}
	if ty != gl.FLOAT {
		f.fail(gl.INVALID_ENUM)
		return
	}
	// WebGL has no client-side arrays.
	if f.arrayBuf == 0 {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	a := &f.attribs[dst]
	a.buf = f.arrayBuf
	a.size = size
	a.typ = ty
	a.normalized = normalized
	a.stride = stride
	a.offset = offset
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.record("glViewport(%d, %d, %d, %d)", x, y, width, height)
	if width < 0 || height < 0 {
		f.fail(gl.INVALID_VALUE)
		return
	}
	f.viewport = [4]int{x, y, width, height}
}

func logLength(log string) int {
	if log == "" {
		return 0
	}
	return len(log) + 1
}

func pow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func mipLevels(w, h int) int {
	if h > w {
		w = h
	}
	return bits.Len(uint(w))
}
