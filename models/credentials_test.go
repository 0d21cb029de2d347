package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCredentials_Apply(t *testing.T) {
	base := Credentials{
		Keys: map[string][]byte{
			KeyNoise:    {1, 2, 3},
			KeyIdentity: {4, 5, 6},
		},
	}

	got := base.Apply(CredentialDelta{
		Account:    ptr("15551234567@s.whatsapp.net"),
		Registered: ptr(true),
		Keys: map[string][]byte{
			KeyNoise:     nil,
			KeyAdvSecret: {7},
		},
	})

	assert.Equal(t, "15551234567@s.whatsapp.net", got.Account)
	assert.True(t, got.Registered)
	assert.Empty(t, got.Platform)
	assert.Nil(t, got.Key(KeyNoise))
	assert.Equal(t, []byte{4, 5, 6}, got.Key(KeyIdentity))
	assert.Equal(t, []byte{7}, got.Key(KeyAdvSecret))

	// the receiver is untouched
	assert.False(t, base.Registered)
	assert.Equal(t, []byte{1, 2, 3}, base.Key(KeyNoise))
}

func TestCredentials_CloneIsDeep(t *testing.T) {
	base := Credentials{Keys: map[string][]byte{KeyNoise: {1}}}
	clone := base.Clone()
	clone.Keys[KeyNoise][0] = 9

	assert.Equal(t, byte(1), base.Keys[KeyNoise][0])
}

func TestCredentialDelta_IsEmpty(t *testing.T) {
	assert.True(t, CredentialDelta{}.IsEmpty())
	assert.False(t, CredentialDelta{Registered: ptr(false)}.IsEmpty())
	assert.False(t, CredentialDelta{Keys: map[string][]byte{KeyNoise: nil}}.IsEmpty())
}

func TestCredentialDelta_Merge(t *testing.T) {
	a := CredentialDelta{Account: ptr("a"), Keys: map[string][]byte{"x": {1}}}
	b := CredentialDelta{Account: ptr("b"), Platform: ptr("android"), Keys: map[string][]byte{"y": {2}}}

	got := a.Merge(b)

	assert.Equal(t, "b", *got.Account)
	assert.Equal(t, "android", *got.Platform)
	assert.Nil(t, got.Registered)
	assert.Equal(t, map[string][]byte{"x": {1}, "y": {2}}, got.Keys)
}
