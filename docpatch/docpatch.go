// Package docpatch applies JSON patches to documents. Documents pass
// through their plain-data form, so NoIndex flags do not survive a patch;
// callers that care about indexing reapply flags after patching.
package docpatch

import (
	"encoding/json"

	"github.com/polydoc/polydoc/debug"
	"github.com/polydoc/polydoc/doc"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ApplyJSONPatch applies an RFC 6902 patch to d and returns the patched
// document. d is not modified.
func ApplyJSONPatch(d *doc.Document, patch []byte) (*doc.Document, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc.DocumentToAny(d))
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("docpatch: applying json patch to %s\n", string(data))
	}
	out, err := ops.Apply(data)
	if err != nil {
		return nil, err
	}
	return fromJSON(out)
}

// ApplyMergePatch applies an RFC 7386 merge patch to d and returns the
// patched document. d is not modified.
func ApplyMergePatch(d *doc.Document, patch []byte) (*doc.Document, error) {
	data, err := json.Marshal(doc.DocumentToAny(d))
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("docpatch: applying merge patch to %s\n", string(data))
	}
	out, err := jsonpatch.MergePatch(data, patch)
	if err != nil {
		return nil, err
	}
	return fromJSON(out)
}

func fromJSON(data []byte) (*doc.Document, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return doc.DocumentFromAny(m)
}
