package layout

import (
	"encoding/json"
	"hash/fnv"
)

func hashBytes(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

// hashFile hashes the decoded layout, so whitespace, comments and key order
// in the file do not count as changes.
func hashFile(f File) uint64 {
	b, err := json.Marshal(f)
	if err != nil {
		return 0
	}
	return hashBytes(b)
}
