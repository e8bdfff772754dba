// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"
	"strings"

	"gioui.org/shader"

	"github.com/quadscreen/quadscreen/internal/gl"
)

// Shader is a shader object. A shader that failed to compile is still
// a valid handle; Compiled is false and Log holds the diagnostics.
type Shader struct {
	obj      gl.Shader
	Stage    ShaderStage
	Compiled bool
	Log      string
}

// Program is a linked shader program.
type Program struct {
	obj  gl.Program
	name string
}

// CompileShader creates a shader object for stage and compiles src.
// Compilation failures are logged and reported through the returned
// Shader; the error is reserved for failing to create the object.
func (c *Context) CompileShader(stage ShaderStage, src string) (Shader, error) {
	obj := c.funcs.CreateShader(stage.glEnum())
	if !obj.Valid() {
		return Shader{}, fmt.Errorf("gpu: glCreateShader failed for %s stage", stage)
	}
	c.funcs.ShaderSource(obj, src)
	c.funcs.CompileShader(obj)
	sh := Shader{obj: obj, Stage: stage, Compiled: true}
	if c.funcs.GetShaderi(obj, gl.COMPILE_STATUS) == gl.FALSE {
		log := strings.TrimSpace(c.funcs.GetShaderInfoLog(obj))
		if log == "" {
			log = "unknown compile error"
		}
		sh.Compiled = false
		sh.Log = log
		Logger().Error("gpu: shader compilation failed", "stage", stage, "log", log)
	}
	return sh, nil
}

// LinkProgram attaches vs and fs to a new program and links it. A
// program that fails to link, or links from a shader that did not
// compile, is an error.
func (c *Context) LinkProgram(vs, fs Shader) (Program, error) {
	if vs.Stage != StageVertex || fs.Stage != StageFragment {
		return Program{}, fmt.Errorf("gpu: cannot link %s and %s shaders", vs.Stage, fs.Stage)
	}
	if !vs.obj.Valid() || !fs.obj.Valid() {
		return Program{}, errors.New("gpu: linking a shader that was never created")
	}
	prog := c.funcs.CreateProgram()
	if !prog.Valid() {
		return Program{}, errors.New("gpu: glCreateProgram failed")
	}
	c.funcs.AttachShader(prog, vs.obj)
	c.funcs.AttachShader(prog, fs.obj)
	c.funcs.LinkProgram(prog)
	linked := c.funcs.GetProgrami(prog, gl.LINK_STATUS) != gl.FALSE
	if linked && vs.Compiled && fs.Compiled {
		return Program{obj: prog}, nil
	}
	var diag []string
	for _, sh := range []Shader{vs, fs} {
		if !sh.Compiled {
			diag = append(diag, fmt.Sprintf("%s shader: %s", sh.Stage, sh.Log))
		}
	}
	if !linked {
		log := strings.TrimSpace(c.funcs.GetProgramInfoLog(prog))
		if log == "" {
			log = "unknown link error"
		}
		Logger().Error("gpu: program link failed", "log", log)
		diag = append(diag, log)
	}
	return Program{}, fmt.Errorf("gpu: program link failed: %s", strings.Join(diag, "; "))
}

// NewProgram compiles and links the variants of vertShader and
// fragShader suited to the context version.
func (c *Context) NewProgram(vertShader, fragShader shader.Sources) (Program, error) {
	vsrc, fsrc := vertShader.GLSL100ES, fragShader.GLSL100ES
	variant := "GLSL 1.00 ES"
	if !c.gles && (c.glver[0] >= 4 || c.glver[0] == 3 && c.glver[1] >= 2) {
		// OpenGL 3.2 Core only accepts glsl 1.50 or newer.
		vsrc, fsrc = vertShader.GLSL150, fragShader.GLSL150
		variant = "GLSL 1.50"
	}
	if vsrc == "" || fsrc == "" {
		return Program{}, fmt.Errorf("gpu: %s/%s: no %s source", vertShader.Name, fragShader.Name, variant)
	}
	vs, err := c.CompileShader(StageVertex, vsrc)
	if err != nil {
		return Program{}, err
	}
	fs, err := c.CompileShader(StageFragment, fsrc)
	if err != nil {
		return Program{}, err
	}
	p, err := c.LinkProgram(vs, fs)
	if err != nil {
		return Program{}, fmt.Errorf("%w (program %s/%s)", err, vertShader.Name, fragShader.Name)
	}
	p.name = vertShader.Name + "/" + fragShader.Name
	Logger().Debug("gpu: program linked", "program", p.name, "variant", variant)
	return p, nil
}

// AttribLocation returns the location of the named vertex attribute,
// or -1 if p does not declare it.
func (c *Context) AttribLocation(p Program, name string) int {
	return c.funcs.GetAttribLocation(p.obj, name)
}

// UniformLocation returns the location of the named uniform and
// whether p declares it.
func (c *Context) UniformLocation(p Program, name string) (gl.Uniform, bool) {
	u := c.funcs.GetUniformLocation(p.obj, name)
	return u, u.Valid()
}
