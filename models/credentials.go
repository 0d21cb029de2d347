// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"time"
)

// Well-known names of the key material held in [Credentials.Keys].
const (
	// KeyNoise is the private half of the static noise-protocol key pair.
	KeyNoise = "noise_key"
	// KeyIdentity is the private half of the long-term identity key pair.
	KeyIdentity = "identity_key"
	// KeyAdvSecret is the secret used to verify the device pairing signature.
	KeyAdvSecret = "adv_secret_key"
)

// Credentials is the persisted identity of the linked device.
//
// A fresh set is unregistered and only carries generated key material.
// Pairing fills Account and flips Registered. The set is never removed
// automatically; only an explicit reset clears it.
type Credentials struct {
	// Account is the network address of the linked account once paired.
	Account string
	// Registered reports whether the device completed pairing.
	Registered bool
	// Platform is the platform name reported by the phone on pairing.
	Platform string
	// RegistrationID is the random ID announced with the identity key.
	RegistrationID uint32
	// Keys holds opaque key material by name.
	Keys map[string][]byte

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key returns the key material stored under name, or nil.
func (c Credentials) Key(name string) []byte {
	return c.Keys[name]
}

// Clone returns a deep copy of c.
func (c Credentials) Clone() Credentials {
	out := c
	out.Keys = make(map[string][]byte, len(c.Keys))
	for k, v := range c.Keys {
		out.Keys[k] = append([]byte(nil), v...)
	}
	return out
}

// Apply returns a copy of c with delta merged in. A nil value in delta.Keys
// removes that key.
func (c Credentials) Apply(delta CredentialDelta) Credentials {
	out := c.Clone()
	if delta.Account != nil {
		out.Account = *delta.Account
	}
	if delta.Registered != nil {
		out.Registered = *delta.Registered
	}
	if delta.Platform != nil {
		out.Platform = *delta.Platform
	}
	for k, v := range delta.Keys {
		if v == nil {
			delete(out.Keys, k)
			continue
		}
		out.Keys[k] = append([]byte(nil), v...)
	}
	return out
}

// CredentialDelta is a partial credential change emitted by the transport.
// Nil fields are left untouched.
type CredentialDelta struct {
	Account    *string
	Registered *bool
	Platform   *string
	Keys       map[string][]byte
}

// IsEmpty reports whether applying the delta would change nothing.
func (d CredentialDelta) IsEmpty() bool {
	return d.Account == nil && d.Registered == nil && d.Platform == nil && len(d.Keys) == 0
}

// Merge returns a delta carrying the fields of d overridden by other.
func (d CredentialDelta) Merge(other CredentialDelta) CredentialDelta {
	out := d
	if other.Account != nil {
		out.Account = other.Account
	}
	if other.Registered != nil {
		out.Registered = other.Registered
	}
	if other.Platform != nil {
		out.Platform = other.Platform
	}
	if len(other.Keys) > 0 {
		out.Keys = make(map[string][]byte, len(d.Keys)+len(other.Keys))
		maps.Copy(out.Keys, d.Keys)
		maps.Copy(out.Keys, other.Keys)
	}
	return out
}
