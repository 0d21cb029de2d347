// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-wa-sender/models"
	"golang.org/x/crypto/curve25519"
)

const (
	keySize          = curve25519.ScalarSize
	advSecretSize    = 32
	registrationMask = 0x3FFF
)

// ErrInvalidKeySize is returned when a private key is not 32 bytes long.
var ErrInvalidKeySize = errors.New("invalid key size")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] backed by the OS CSPRNG.
func NewKeyChainService() KeyChainService {
	return &keyChainService{random: rand.Reader}
}

// GenerateKeyPair implements [KeyChainService]. The private key is clamped
// per RFC 7748 before the public key is derived.
func (k *keyChainService) GenerateKeyPair() ([]byte, []byte, error) {
	priv, err := k.GenerateSecret(keySize)
	if err != nil {
		return nil, nil, err
	}
	clamp(priv)

	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive public key: %w", err)
	}
	return priv, pub, nil
}

// PublicKey implements [KeyChainService].
func (k *keyChainService) PublicKey(priv []byte) ([]byte, error) {
	if len(priv) != keySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, len(priv))
	}
	return curve25519.X25519(priv, curve25519.Basepoint)
}

// GenerateRegistrationID implements [KeyChainService].
func (k *keyChainService) GenerateRegistrationID() (uint32, error) {
	var buf [4]byte
	for {
		if _, err := io.ReadFull(k.random, buf[:]); err != nil {
			return 0, err
		}
		if id := binary.BigEndian.Uint32(buf[:]) & registrationMask; id != 0 {
			return id, nil
		}
	}
}

// GenerateSecret implements [KeyChainService].
func (k *keyChainService) GenerateSecret(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(k.random, b); err != nil {
		return nil, err
	}
	return b, nil
}

// NewIdentity implements [KeyChainService].
func (k *keyChainService) NewIdentity() (models.Credentials, error) {
	noise, _, err := k.GenerateKeyPair()
	if err != nil {
		return models.Credentials{}, fmt.Errorf("noise key: %w", err)
	}
	identity, _, err := k.GenerateKeyPair()
	if err != nil {
		return models.Credentials{}, fmt.Errorf("identity key: %w", err)
	}
	adv, err := k.GenerateSecret(advSecretSize)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("adv secret: %w", err)
	}
	regID, err := k.GenerateRegistrationID()
	if err != nil {
		return models.Credentials{}, fmt.Errorf("registration id: %w", err)
	}

	now := time.Now().UTC()
	return models.Credentials{
		RegistrationID: regID,
		Keys: map[string][]byte{
			models.KeyNoise:     noise,
			models.KeyIdentity:  identity,
			models.KeyAdvSecret: adv,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Fingerprint implements [KeyChainService].
func (k *keyChainService) Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}

func clamp(priv []byte) {
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64
}
