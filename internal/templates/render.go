package templates

import (
	"fmt"
	"path"
	"strings"

	oerrors "github.com/pyforge/cli/internal/errors"
)

// Instruction is one rendered output of a template: either a directory to
// create or a file to write. Path is relative to the kind's subdirectory and
// uses forward slashes.
type Instruction struct {
	Path    string
	Content string
	Dir     bool
}

// UnresolvedPlaceholderError reports a {placeholder} token whose key has no
// value in the context. It marks a defect in the built-in catalog, never a
// user input error: substitution fails loudly instead of emitting the token
// literally.
type UnresolvedPlaceholderError struct {
	// Key is the placeholder name that had no context value.
	Key string

	// Entry is the path pattern of the template entry being rendered.
	Entry string
}

func (e *UnresolvedPlaceholderError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("unresolved placeholder {%s}", e.Key)
	}
	return fmt.Sprintf("unresolved placeholder {%s} in template entry %q", e.Key, e.Entry)
}

func (e *UnresolvedPlaceholderError) Unwrap() error {
	return oerrors.ErrDefect
}

// DuplicatePathError reports two template entries rendering to the same
// destination path for one context.
type DuplicatePathError struct {
	Path string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("template entries collide on rendered path %q", e.Path)
}

func (e *DuplicatePathError) Unwrap() error {
	return oerrors.ErrDefect
}

// InvalidPathError reports a rendered destination path that is absolute or
// escapes the target subdirectory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("template entry renders to invalid path %q", e.Path)
}

func (e *InvalidPathError) Unwrap() error {
	return oerrors.ErrDefect
}

// Render applies a context to a template, producing the ordered sequence of
// directory and file instructions to materialize. The order matches the
// template's declared entry order.
//
// Rendering is pure text substitution over {placeholder} tokens; content is
// never evaluated, so generated code is inert data here. Any unresolved
// placeholder, path collision, or escaping path aborts the whole render.
func Render(tpl Template, ctx Context) ([]Instruction, error) {
	instructions := make([]Instruction, 0, len(tpl.Files))
	seen := make(map[string]struct{}, len(tpl.Files))

	for _, f := range tpl.Files {
		isDir := strings.HasSuffix(f.Path, "/")

		rendered, err := Substitute(f.Path, ctx)
		if err != nil {
			return nil, placedAt(err, f.Path)
		}

		cleaned := path.Clean(strings.TrimSuffix(rendered, "/"))
		if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") || cleaned == "." {
			return nil, &InvalidPathError{Path: rendered}
		}
		if _, dup := seen[cleaned]; dup {
			return nil, &DuplicatePathError{Path: cleaned}
		}
		seen[cleaned] = struct{}{}

		if isDir {
			instructions = append(instructions, Instruction{Path: cleaned, Dir: true})
			continue
		}

		content, err := Substitute(f.Content, ctx)
		if err != nil {
			return nil, placedAt(err, f.Path)
		}
		instructions = append(instructions, Instruction{Path: cleaned, Content: content})
	}

	return instructions, nil
}

// Substitute performs literal find-and-replace of {placeholder} tokens over
// the pattern. A token is a "{", a lowercase snake identifier, and a "}";
// any other brace sequence passes through untouched, so brace-bearing
// content (dict literals, CI expressions) survives rendering.
func Substitute(pattern string, ctx Context) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern))

	for i := 0; i < len(pattern); {
		if pattern[i] != '{' {
			b.WriteByte(pattern[i])
			i++
			continue
		}

		end := matchPlaceholder(pattern, i)
		if end < 0 {
			b.WriteByte('{')
			i++
			continue
		}

		key := pattern[i+1 : end-1]
		val, ok := ctx[key]
		if !ok {
			return "", &UnresolvedPlaceholderError{Key: key}
		}
		b.WriteString(val)
		i = end
	}

	return b.String(), nil
}

// matchPlaceholder reports the index just past the closing brace of a
// placeholder starting at i, or -1 if pattern[i:] is not one.
func matchPlaceholder(pattern string, i int) int {
	j := i + 1
	if j >= len(pattern) || !isIdentStart(pattern[j]) {
		return -1
	}
	for j < len(pattern) && isIdentChar(pattern[j]) {
		j++
	}
	if j >= len(pattern) || pattern[j] != '}' {
		return -1
	}
	return j + 1
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

// placedAt attaches the template entry path to an unresolved placeholder
// error so defect reports name the offending entry.
func placedAt(err error, entry string) error {
	if ue, ok := err.(*UnresolvedPlaceholderError); ok {
		ue.Entry = entry
		return ue
	}
	return err
}
