package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// envKeyTag versions the key encoding. Changing it invalidates every cached environment.
const envKeyTag = "piprun/env/v1"

// EnvKeyLength is the length of a hex-encoded environment key.
const EnvKeyLength = sha256.Size * 2

// GenerateEnvKey creates a deterministic hash from an environment specification.
// Fields are length-prefixed so that no two distinct specs share an encoding.
// Requirement order is part of the identity.
func GenerateEnvKey(spec EnvSpec) string {
	buf := make([]byte, 0, 64)
	buf = append(buf, envKeyTag...)
	buf = appendField(buf, spec.Interpreter)
	buf = binary.AppendUvarint(buf, uint64(len(spec.Requirements)))
	for _, req := range spec.Requirements {
		buf = appendField(buf, req)
	}

	hash := sha256.Sum256(buf)
	return hex.EncodeToString(hash[:])
}

func appendField(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// IsEnvKey reports whether name has the shape of an environment key.
func IsEnvKey(name string) bool {
	if len(name) != EnvKeyLength {
		return false
	}
	for i := range len(name) {
		c := name[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
