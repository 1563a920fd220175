// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

// Address is a 20-byte identity used for authorization checks.
// The zero address is never a valid party; it doubles as the existence
// sentinel on agreement records.
type Address [20]byte

// Zero returns true if the address is all zeros.
func (a Address) Zero() bool {
	return a == Address{}
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// String returns a 0x-prefixed hex representation of the address.
func (a Address) String() string {
	const hexChars = "0123456789abcdef"
	result := make([]byte, 2+40)
	result[0], result[1] = '0', 'x'
	for i, b := range a {
		result[2+i*2] = hexChars[b>>4]
		result[2+i*2+1] = hexChars[b&0x0f]
	}
	return string(result)
}

// AddressFromBytes creates an address from a byte slice.
func AddressFromBytes(b []byte) Address {
	var a Address
	copy(a[:], b)
	return a
}
