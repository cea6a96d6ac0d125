package common

import "github.com/nspcc-dev/neo-go/pkg/interop"

// IsZeroAddress returns true if addr is not a valid 20-byte account or
// consists of zero bytes only.
func IsZeroAddress(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return true
	}

	for i := range addr {
		if addr[i] != 0 {
			return false
		}
	}

	return true
}

// CheckAddress panics with ErrZeroAddress if addr is a zero address.
func CheckAddress(addr interop.Hash160) {
	if IsZeroAddress(addr) {
		panic(ErrZeroAddress)
	}
}

// CheckAddressChange panics if the new account is a zero address or equals
// to the current one.
func CheckAddressChange(current, next interop.Hash160) {
	CheckAddress(next)
	if next.Equals(current) {
		panic(ErrNothingChanged)
	}
}
