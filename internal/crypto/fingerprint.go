// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"

	"github.com/MKhiriev/go-card-validator/internal/formatter"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

// fingerprintSalt domain-separates the derived MAC key from any other use
// of the configured hash key.
var fingerprintSalt = []byte("go-card-validator/fingerprint/v1")

// blake2bFingerprinter is the private implementation of [Fingerprinter].
type blake2bFingerprinter struct {
	key []byte
}

// NewFingerprinter derives a 256-bit BLAKE2b key from hashKey with Argon2id
// and returns a [Fingerprinter] using it. The derivation runs once, so the
// per-request cost is a single BLAKE2b-256 over at most 19 bytes.
//
// An empty hashKey is accepted; fingerprints are then still stable but can
// be brute-forced by anyone who knows the salt.
func NewFingerprinter(hashKey string) Fingerprinter {
	return &blake2bFingerprinter{
		key: argon2.IDKey([]byte(hashKey), fingerprintSalt, 1, 19*1024, 2, 32),
	}
}

// Fingerprint implements [Fingerprinter].
func (f *blake2bFingerprinter) Fingerprint(cardNumber string) string {
	// New256 only fails for keys longer than 64 bytes.
	h, err := blake2b.New256(f.key)
	if err != nil {
		panic(err)
	}
	h.Write([]byte(formatter.Normalize(cardNumber)))
	return hex.EncodeToString(h.Sum(nil))
}
