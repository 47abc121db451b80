package types

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DefaultSS58Format is the generic Substrate network prefix.
const DefaultSS58Format SS58Format = 42

// SS58Address is a checksummed, network-prefixed Substrate address.
type SS58Address string

// String returns the string form of the address.
func (a SS58Address) String() string { return string(a) }

// EVMAddress is a lower-case 0x-prefixed 20-byte (H160) address.
type EVMAddress string

// String returns the string form of the address.
func (a EVMAddress) String() string { return string(a) }

// SS58Format is the network prefix carried by an SS58 address.
type SS58Format uint16

// PublicKey is the raw account id decoded from an address.
type PublicKey []byte

// Hex returns the key as lower-case 0x-prefixed hex.
func (k PublicKey) Hex() string { return "0x" + hex.EncodeToString(k) }

// MarshalText renders the key as 0x hex.
func (k PublicKey) MarshalText() ([]byte, error) { return []byte(k.Hex()), nil }

// UnmarshalText parses 0x hex. A bare "0x" is an empty key.
func (k *PublicKey) UnmarshalText(b []byte) error {
	if string(b) == "0x" {
		*k = PublicKey{}
		return nil
	}
	raw, err := hexutil.Decode(string(b))
	if err != nil {
		return err
	}
	*k = raw
	return nil
}

// EVMConversion is the result of deriving an H160 address from an SS58 one.
type EVMConversion struct {
	Input       SS58Address `json:"input"`
	EVM         EVMAddress  `json:"evm"`
	Checksummed string      `json:"checksummed,omitempty"`
	PublicKey   PublicKey   `json:"public_key"`
	Format      SS58Format  `json:"ss58_format"`
}

// SS58Conversion is the result of mapping an H160 address to SS58.
type SS58Conversion struct {
	Input     EVMAddress  `json:"input"`
	SS58      SS58Address `json:"ss58"`
	PublicKey PublicKey   `json:"public_key"`
	Format    SS58Format  `json:"ss58_format"`
}

// DecodedAddress is an address split into its network prefix and key.
type DecodedAddress struct {
	Input     string     `json:"input"`
	Format    SS58Format `json:"ss58_format"`
	PublicKey PublicKey  `json:"public_key"`
}
