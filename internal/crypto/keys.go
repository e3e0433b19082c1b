package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the storage key from the build secret
const (
	// Argon2Time is the number of iterations (time cost)
	Argon2Time = 1
	// Argon2Memory is the memory cost in KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads is the parallelism degree
	Argon2Threads = 4
)

// keyContext salts the derivation. Changing it (or the secret) makes all
// previously stored ciphertext undecryptable, which must fail closed.
const keyContext = "blogkeeper/secure-store/v1"

// DeriveKey derives the 32-byte storage key from the build-time encryption
// secret. The derivation is deterministic so every process with the same
// secret reads the same ciphertext.
func DeriveKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("encryption secret cannot be empty")
	}

	salt := sha256.Sum256([]byte(keyContext))
	key := argon2.IDKey([]byte(secret), salt[:], Argon2Time, Argon2Memory, Argon2Threads, KeySize)

	return key, nil
}
