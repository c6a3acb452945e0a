// File: pkg/bundle/binary.go
package bundle

import "bytes"

// isBinaryContent reports whether decoded file bytes look binary. A null
// byte anywhere in the content is the contract signal; text encodings in
// practical use never contain one.
func isBinaryContent(data []byte) bool {
	return bytes.Contains(data, []byte{0})
}
