package declare

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// ParseYAML decodes and validates a hierarchy declaration:
//
//	root: animal
//	subtypes:
//	  - type: cat
//	    index: true
//	  - type: tiger
//	    parent: cat
//	    name: Tiger
//	    alsoLoad: [Panthera]
func ParseYAML(data []byte) (*Hierarchy, error) {
	h := &Hierarchy{}
	if err := yaml.Unmarshal(data, h); err != nil {
		return nil, fmt.Errorf("declare: %w", err)
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}
