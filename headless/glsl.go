// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/gogpu/gldraw/glcore"
)

// storage is the interface qualifier of a global declaration.
type storage uint8

const (
	storageNone storage = iota
	storageIn
	storageOut
	storageUniform
)

// word is one lexical token of shader code with its source line.
type word struct {
	text string
	line int
}

// declaration is one interface variable found at global scope.
type declaration struct {
	storage  storage
	typ      glcore.Enum
	name     string
	size     int // array length, 1 for non-arrays
	location int // layout(location = N), -1 when absent
	line     int
}

// shaderUnit is the result of analyzing one shader source.
type shaderUnit struct {
	stage glcore.Enum
	words []word
	decls []declaration
	uses  map[string]int
}

// used reports whether name appears in the unit beyond its declaration.
func (u *shaderUnit) used(name string) bool {
	return u.uses[name] > 1
}

// builtinUses reports whether the unit references a builtin variable.
func (u *shaderUnit) builtinUses(name string) bool {
	return u.uses[name] > 0
}

// qualifiers that may precede the type of a global declaration.
var ignoredQualifiers = map[string]bool{
	"flat": true, "smooth": true, "noperspective": true, "centroid": true,
	"invariant": true, "precise": true, "const": true,
	"highp": true, "mediump": true, "lowp": true,
}

// lexGLSL splits GLSL source into code words. Comments and preprocessor
// lines are dropped using chroma's GLSL lexer; the remaining token values
// are split into identifiers, numbers and single punctuation characters.
func lexGLSL(src string) ([]word, error) {
	lexer := lexers.Get("glsl")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return nil, err
	}

	var words []word
	line := 1
	for _, tok := range it.Tokens() {
		if !tok.Type.InCategory(chroma.Comment) {
			words = splitWords(words, tok.Value, line)
		}
		line += strings.Count(tok.Value, "\n")
	}
	return words, nil
}

func splitWords(dst []word, s string, line int) []word {
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			i++
		case isIdentStart(c):
			j := i + 1
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			dst = append(dst, word{s[i:j], line})
			i = j
		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(s) && (isIdentPart(s[j]) || s[j] == '.') {
				j++
			}
			dst = append(dst, word{s[i:j], line})
			i = j
		default:
			dst = append(dst, word{s[i : i+1], line})
			i++
		}
	}
	return dst
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// analyze lexes and checks one shader. Diagnostics are returned in the
// "0:LINE(0): error: ..." form that Mesa uses.
func analyze(stage glcore.Enum, src string) (*shaderUnit, []string) {
	words, err := lexGLSL(src)
	if err != nil {
		return nil, []string{fmt.Sprintf("0:0(0): error: %v", err)}
	}

	u := &shaderUnit{
		stage: stage,
		words: words,
		uses:  make(map[string]int),
	}
	for _, w := range words {
		if isIdentStart(w.text[0]) {
			u.uses[w.text]++
		}
	}

	var errs []string
	errs = append(errs, checkBalance(words)...)
	if !hasMain(words) {
		errs = append(errs, "0:0(0): error: function `main' not defined")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	depth := 0
	var stmt []word
	for _, w := range words {
		switch w.text {
		case "{":
			if depth == 0 {
				stmt = stmt[:0]
			}
			depth++
			continue
		case "}":
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		if w.text == ";" {
			decls, derr := parseDeclaration(stage, stmt)
			if derr != "" {
				errs = append(errs, derr)
			}
			u.decls = append(u.decls, decls...)
			stmt = stmt[:0]
			continue
		}
		stmt = append(stmt, w)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return u, nil
}

func checkBalance(words []word) []string {
	pairs := map[string]string{")": "(", "]": "[", "}": "{"}
	var stack []word
	for _, w := range words {
		switch w.text {
		case "(", "[", "{":
			stack = append(stack, w)
		case ")", "]", "}":
			if len(stack) == 0 || stack[len(stack)-1].text != pairs[w.text] {
				return []string{fmt.Sprintf("0:%d(0): error: syntax error, unexpected '%s'", w.line, w.text)}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return []string{fmt.Sprintf("0:%d(0): error: syntax error, unmatched '%s'", top.line, top.text)}
	}
	return nil
}

func hasMain(words []word) bool {
	for i := 0; i+2 < len(words); i++ {
		if words[i].text == "void" && words[i+1].text == "main" && words[i+2].text == "(" {
			return true
		}
	}
	return false
}

// parseDeclaration interprets one global statement. Statements without an
// interface qualifier yield no declarations.
func parseDeclaration(stage glcore.Enum, stmt []word) ([]declaration, string) {
	if len(stmt) == 0 || stmt[0].text == "precision" {
		return nil, ""
	}
	line := stmt[0].line
	location := -1

	i := 0
	if stmt[0].text == "layout" {
		end := i + 1
		for end < len(stmt) && stmt[end].text != ")" {
			end++
		}
		for k := i + 1; k+2 < end; k++ {
			if stmt[k].text == "location" && stmt[k+1].text == "=" {
				n, err := strconv.Atoi(stmt[k+2].text)
				if err != nil {
					return nil, fmt.Sprintf("0:%d(0): error: invalid location `%s'", line, stmt[k+2].text)
				}
				location = n
			}
		}
		i = end + 1
	}

	st := storageNone
	for ; i < len(stmt); i++ {
		t := stmt[i].text
		if ignoredQualifiers[t] {
			continue
		}
		switch t {
		case "in":
			st = storageIn
			continue
		case "out":
			st = storageOut
			continue
		case "uniform":
			st = storageUniform
			continue
		case "attribute":
			if stage != glcore.VertexShader {
				return nil, fmt.Sprintf("0:%d(0): error: `attribute' qualifier only allowed in vertex shaders", line)
			}
			st = storageIn
			continue
		case "varying":
			if stage == glcore.VertexShader {
				st = storageOut
			} else {
				st = storageIn
			}
			continue
		}
		break
	}
	if st == storageNone || i >= len(stmt) {
		return nil, ""
	}

	typeName := stmt[i].text
	typ, ok := glcore.TypeByName(typeName)
	if !ok {
		return nil, fmt.Sprintf("0:%d(0): error: syntax error, unexpected IDENTIFIER `%s'", stmt[i].line, typeName)
	}
	i++

	var decls []declaration
	for i < len(stmt) {
		if !isIdentStart(stmt[i].text[0]) {
			return nil, fmt.Sprintf("0:%d(0): error: syntax error, unexpected '%s'", stmt[i].line, stmt[i].text)
		}
		d := declaration{
			storage:  st,
			typ:      typ,
			name:     stmt[i].text,
			size:     1,
			location: location,
			line:     stmt[i].line,
		}
		i++
		if i < len(stmt) && stmt[i].text == "[" {
			if i+2 >= len(stmt) || stmt[i+2].text != "]" {
				return nil, fmt.Sprintf("0:%d(0): error: array size must be a constant", d.line)
			}
			n, err := strconv.Atoi(stmt[i+1].text)
			if err != nil || n <= 0 {
				return nil, fmt.Sprintf("0:%d(0): error: array size must be a positive constant", d.line)
			}
			d.size = n
			i += 3
		}
		decls = append(decls, d)
		if i < len(stmt) && stmt[i].text == "," {
			i++
			location = -1
			continue
		}
		if i < len(stmt) {
			return nil, fmt.Sprintf("0:%d(0): error: syntax error, unexpected '%s'", stmt[i].line, stmt[i].text)
		}
	}
	return decls, ""
}
