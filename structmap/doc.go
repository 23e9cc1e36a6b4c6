// Package structmap provides reflection-based Creator and Populator
// implementations for the translate package.
//
// Fields are mapped by name, adjustable with the "doc" struct tag:
//
//	type Cat struct {
//		Name   string `doc:"name"`
//		Lives  int    `doc:"lives,noindex"`
//		Notes  string `doc:",omitempty"`
//		hidden string // unexported, ignored
//		Skip   string `doc:"-"`
//	}
//
// Supported flags are "noindex" (exclude the value from store indexes) and
// "omitempty" (drop zero values on save). Embedded structs are flattened
// into the parent document. Types implementing encoding.TextMarshaler and
// encoding.TextUnmarshaler translate through their text form, which covers
// time.Time among others.
//
// Reserved document fields ("^d", "^i") and unknown fields are ignored on
// load; discriminator handling belongs to the translate package alone.
package structmap
