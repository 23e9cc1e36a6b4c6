package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Colors maps rendering roles to sprintf-style colorizers.
type Colors struct {
	Field  func(string, ...any) string
	String func(string, ...any) string
	Number func(string, ...any) string
	Bool   func(string, ...any) string
	Null   func(string, ...any) string
	Sep    func(string, ...any) string
	Marker func(string, ...any) string
}

// NewColors returns the default terminal color scheme.
func NewColors() *Colors {
	c := &Colors{
		Field:  color.RGB(128, 168, 196).SprintfFunc(),
		String: color.RGB(8, 196, 16).SprintfFunc(),
		Number: color.RGB(128, 216, 236).SprintfFunc(),
		Bool:   color.CyanString,
		Null:   color.RGB(168, 0, 196).SprintfFunc(),
		Sep:    color.RGB(196, 128, 128).SprintfFunc(),
		Marker: color.RGB(96, 96, 96).SprintfFunc(),
	}
	escape := func(f func(string, ...any) string) func(string, ...any) string {
		return func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	c.Field = escape(c.Field)
	c.String = escape(c.String)
	c.Number = escape(c.Number)
	c.Bool = escape(c.Bool)
	c.Null = escape(c.Null)
	c.Sep = escape(c.Sep)
	c.Marker = escape(c.Marker)
	return c
}

// PlainColors returns a scheme that colors nothing.
func PlainColors() *Colors {
	plain := func(v string, args ...any) string {
		if len(args) == 0 {
			return v
		}
		return fmt.Sprintf(v, args...)
	}
	return &Colors{
		Field:  plain,
		String: plain,
		Number: plain,
		Bool:   plain,
		Null:   plain,
		Sep:    plain,
		Marker: plain,
	}
}
