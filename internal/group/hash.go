/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package group

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// shortHashLength is how many hex characters of a template hash are shown in
// reports. The full digest is always used for grouping.
const shortHashLength = 7

// TemplateHash returns the SHA-256 hex digest of a canonicalized template
// body. JSON templates are re-serialized with sorted keys before hashing, so
// byte-different but semantically equal JSON bodies produce the same digest.
// Non-JSON bodies (YAML templates) are hashed as-is.
func TemplateHash(body string) string {
	canonical := []byte(body)

	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err == nil {
		// encoding/json marshals map keys in sorted order
		if encoded, err := json.Marshal(decoded); err == nil {
			canonical = encoded
		}
	}

	digest := sha256.Sum256(canonical)
	return hex.EncodeToString(digest[:])
}

// ShortHash truncates a hash for display.
func ShortHash(hash string) string {
	if len(hash) <= shortHashLength {
		return hash
	}
	return hash[:shortHashLength]
}
