// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidProtocolVersion is returned by [ParseProtocolVersion] for strings
// that are not three dot-separated unsigned integers.
var ErrInvalidProtocolVersion = errors.New("invalid protocol version")

// ProtocolVersion is the web client version announced to the network during
// the handshake, as (primary, secondary, tertiary).
type ProtocolVersion [3]uint32

// ParseProtocolVersion parses "2.3000.1023223821" into a [ProtocolVersion].
func ParseProtocolVersion(s string) (ProtocolVersion, error) {
	var v ProtocolVersion

	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != len(v) {
		return ProtocolVersion{}, fmt.Errorf("%w: %q", ErrInvalidProtocolVersion, s)
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return ProtocolVersion{}, fmt.Errorf("%w: %q", ErrInvalidProtocolVersion, s)
		}
		v[i] = uint32(n)
	}

	return v, nil
}

// IsZero reports whether no version was set.
func (v ProtocolVersion) IsZero() bool {
	return v == ProtocolVersion{}
}

// String returns the dotted form of the version.
func (v ProtocolVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}
