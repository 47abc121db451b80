package crypto

import "github.com/ethereum/go-ethereum/common/hexutil"

// ToHex returns b as lower-case 0x-prefixed hex.
func ToHex(b []byte) string { return hexutil.Encode(b) }

// FromHex decodes a 0x-prefixed hex string.
func FromHex(s string) ([]byte, error) {
	if s == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(s)
}

// IsHex reports whether s is 0x-prefixed, even-length hex. A bare "0x" counts.
// The prefix must be lower case.
func IsHex(s string) bool {
	if len(s) < 2 || s[0] != '0' || s[1] != 'x' {
		return false
	}
	_, err := FromHex(s)
	return err == nil
}
