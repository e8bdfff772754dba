// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "syscall/js"

type (
	Buffer      js.Value
	Program     js.Value
	Shader      js.Value
	Texture     js.Value
	Uniform     js.Value
	VertexArray js.Value
)

func (b Buffer) Valid() bool {
	return !js.Value(b).IsUndefined() && !js.Value(b).IsNull()
}

func (p Program) Valid() bool {
	return !js.Value(p).IsUndefined() && !js.Value(p).IsNull()
}

func (s Shader) Valid() bool {
	return !js.Value(s).IsUndefined() && !js.Value(s).IsNull()
}

func (t Texture) Valid() bool {
	return !js.Value(t).IsUndefined() && !js.Value(t).IsNull()
}

func (u Uniform) Valid() bool {
	return !js.Value(u).IsUndefined() && !js.Value(u).IsNull()
}

func (a VertexArray) Valid() bool {
	return !js.Value(a).IsUndefined() && !js.Value(a).IsNull()
}

func (b Buffer) Equal(b2 Buffer) bool {
	return js.Value(b).Equal(js.Value(b2))
}

func (p Program) Equal(p2 Program) bool {
	return js.Value(p).Equal(js.Value(p2))
}

func (t Texture) Equal(t2 Texture) bool {
	return js.Value(t).Equal(js.Value(t2))
}

func (a VertexArray) Equal(a2 VertexArray) bool {
	return js.Value(a).Equal(js.Value(a2))
}
