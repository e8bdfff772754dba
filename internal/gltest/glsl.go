// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quadscreen/quadscreen/internal/gl"
)

// variable is a global declaration of a shader stage.
type variable struct {
	qualifier string
	typ       string
	name      string
	// active is set if the variable is referenced after its
	// declaration. Inactive variables get no location, like
	// variables a real compiler optimizes out.
	active bool
}

type translationUnit struct {
	hasMain  bool
	attribs  []variable
	uniforms []variable
}

var (
	declRE = regexp.MustCompile(`^(attribute|in|uniform|varying|out)\s+(?:(?:lowp|mediump|highp|flat|smooth)\s+)*(\w+)\s+(\w+)$`)
	mainRE = regexp.MustCompile(`\bvoid\s+main\s*\(`)
)

// parseGLSL performs the checks of a compiler front end the pipeline
// can observe: delimiter balance, global declarations and the
// presence of main. It returns an info log on error.
func parseGLSL(typ gl.Enum, src string) (translationUnit, string) {
	var tu translationUnit
	code := stripComments(src)
	if log := checkDelimiters(code); log != "" {
		return tu, log
	}
	tu.hasMain = mainRE.MatchString(code)
	for _, stmt := range globalStatements(code) {
		m := declRE.FindStringSubmatch(stmt)
		if m == nil {
			continue
		}
		v := variable{qualifier: m[1], typ: m[2], name: m[3]}
		v.active = len(regexp.MustCompile(`\b`+regexp.QuoteMeta(v.name)+`\b`).FindAllStringIndex(code, -1)) > 1
		switch {
		case v.qualifier == "uniform":
			tu.uniforms = append(tu.uniforms, v)
		case typ == gl.VERTEX_SHADER && (v.qualifier == "attribute" || v.qualifier == "in"):
			tu.attribs = append(tu.attribs, v)
		case typ == gl.FRAGMENT_SHADER && v.qualifier == "attribute":
			return tu, fmt.Sprintf("ERROR: 0:%d: 'attribute' : supported in vertex shaders only", lineOf(code, stmt))
		}
	}
	return tu, ""
}

// stripComments blanks out comments and preprocessor lines, keeping
// line breaks so that line numbers stay valid.
func stripComments(src string) string {
	var b strings.Builder
	for i := 0; i < len(src); i++ {
		switch {
		case strings.HasPrefix(src[i:], "//"):
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				b.WriteByte('\n')
			}
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end == -1 {
				end = len(src) - i - 2
			}
			for _, c := range src[i : i+2+end] {
				if c == '\n' {
					b.WriteByte('\n')
				}
			}
			i += 2 + end + 1
		default:
			b.WriteByte(src[i])
		}
	}
	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "#") {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

func checkDelimiters(code string) string {
	pairs := map[byte]byte{')': '(', '}': '{', ']': '['}
	var stack []byte
	line := 1
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch c {
		case '\n':
			line++
		case '(', '{', '[':
			stack = append(stack, c)
		case ')', '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[c] {
				return fmt.Sprintf("ERROR: 0:%d: '%c' : syntax error", line, c)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return fmt.Sprintf("ERROR: 0:%d: '' : syntax error, unexpected end of file", line)
	}
	return ""
}

// globalStatements returns the statements at file scope, without
// their terminating semicolon.
func globalStatements(code string) []string {
	var stmts []string
	depth, start := 0, 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '{', '(':
			depth++
		case '}', ')':
			depth--
			if depth == 0 && code[i] == '}' {
				start = i + 1
			}
		case ';':
			if depth == 0 {
				stmts = append(stmts, strings.Join(strings.Fields(code[start:i]), " "))
				start = i + 1
			}
		}
	}
	return stmts
}

func lineOf(code, stmt string) int {
	first := strings.Fields(stmt)
	if len(first) == 0 {
		return 0
	}
	idx := strings.Index(code, first[0])
	if idx == -1 {
		return 0
	}
	return strings.Count(code[:idx], "\n") + 1
}
