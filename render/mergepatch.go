package render

import (
	"encoding/json"
	"fmt"
	"io"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/docdelta/docdelta/ir"
)

// MergePatch writes an RFC 7386 merge patch transforming old into new.
// Order-only changes do not survive this format: applying the patch to
// old reproduces new's values, not its key order.
func MergePatch(w io.Writer, old, new *ir.Node) error {
	oldJSON, err := json.Marshal(old.ToAny())
	if err != nil {
		return fmt.Errorf("encoding old document: %w", err)
	}
	newJSON, err := json.Marshal(new.ToAny())
	if err != nil {
		return fmt.Errorf("encoding new document: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(oldJSON, newJSON)
	if err != nil {
		return fmt.Errorf("creating merge patch: %w", err)
	}
	patch = append(patch, '\n')
	_, err = w.Write(patch)
	return err
}
