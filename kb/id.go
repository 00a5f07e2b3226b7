package kb

import (
	"crypto/md5"
	"encoding/hex"
)

// idLength is the number of hex characters kept from the content hash.
const idLength = 12

// ContentID derives a deterministic identifier from a piece of content.
// Identical content always produces the same id, so records repeated
// verbatim across videos or runs keep a stable identity.
func ContentID(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])[:idLength]
}
