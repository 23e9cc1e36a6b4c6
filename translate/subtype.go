package translate

import "reflect"

// Subtype declares one registered subtype of a hierarchy: the concrete Go
// type, an optional discriminator name (the type's simple name when empty),
// whether the discriminator participates in ancestry indexing, and any
// legacy discriminator names old documents may still carry.
type Subtype struct {
	Type     reflect.Type
	Name     string
	Index    bool
	AlsoLoad []string
}

// Discriminator returns the effective discriminator: the declared name, or
// the Go type's simple name when none was declared.
func (s *Subtype) Discriminator() string {
	if s.Name != "" {
		return s.Name
	}
	t := s.Type
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
