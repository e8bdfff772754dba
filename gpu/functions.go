// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "github.com/quadscreen/quadscreen/internal/gl"

// Functions is the subset of the OpenGL (ES) and WebGL API the pipeline
// issues. *gl.Functions implements it for every supported platform.
type Functions interface {
	ActiveTexture(t gl.Enum)
	AttachShader(p gl.Program, s gl.Shader)
	BindBuffer(target gl.Enum, b gl.Buffer)
	BindTexture(target gl.Enum, t gl.Texture)
	BindVertexArray(a gl.VertexArray)
	BufferData(target gl.Enum, size int, usage gl.Enum, data []byte)
	Clear(mask gl.Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s gl.Shader)
	CreateBuffer() gl.Buffer
	CreateProgram() gl.Program
	CreateShader(ty gl.Enum) gl.Shader
	CreateTexture() gl.Texture
	CreateVertexArray() gl.VertexArray
	DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int)
	EnableVertexAttribArray(a gl.Attrib)
	GenerateMipmap(target gl.Enum)
	GetAttribLocation(p gl.Program, name string) int
	GetError() gl.Enum
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string
	GetString(pname gl.Enum) string
	GetUniformLocation(p gl.Program, name string) gl.Uniform
	LinkProgram(p gl.Program)
	ShaderSource(s gl.Shader, src string)
	TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte)
	TexParameteri(target, pname gl.Enum, param int)
	TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, ty gl.Enum, data []byte)
	Uniform1i(dst gl.Uniform, v int)
	UseProgram(p gl.Program)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
