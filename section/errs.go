package section

import "errors"

// ErrStructure reports a malformed tree, such as duplicate sibling
// markers. It is a hard precondition failure: no diff is attempted on a
// tree that fails validation.
var ErrStructure = errors.New("invalid section structure")
