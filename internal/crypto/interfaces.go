package crypto

import "github.com/MKhiriev/go-wa-sender/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService generates the key material of a new linked device.
// It knows nothing about the network or the database; its only job is to
// produce fresh identities that the credential store persists.
//
// Layout of a fresh identity:
//
//	noise_key      X25519 private key of the static noise key pair
//	identity_key   X25519 private key of the long-term identity key pair
//	adv_secret_key 32 random bytes verifying the pairing signature
//	registration   random 14-bit registration ID
type KeyChainService interface {
	// GenerateKeyPair returns a fresh clamped X25519 private key and its
	// public key.
	GenerateKeyPair() (priv, pub []byte, err error)

	// PublicKey derives the X25519 public key of priv.
	PublicKey(priv []byte) ([]byte, error)

	// GenerateRegistrationID returns a random non-zero 14-bit ID.
	GenerateRegistrationID() (uint32, error)

	// GenerateSecret returns n random bytes.
	GenerateSecret(n int) ([]byte, error)

	// NewIdentity returns an unregistered credential set with freshly
	// generated key material.
	NewIdentity() (models.Credentials, error)

	// Fingerprint returns a short hex fingerprint of a public key.
	Fingerprint(pub []byte) string
}
