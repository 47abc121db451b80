package crypto

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/blake2b"
)

// EVMAddressBytes is the size of an H160 address.
const EVMAddressBytes = common.AddressLength

var ErrEVMLength = errors.New("invalid evm address length")

// AddressToEVM returns the H160 for an SS58 (or hex) address: the first 20
// bytes of its account id. Shorter account ids come back whole.
func AddressToEVM(address string) ([]byte, error) {
	_, key, err := DecodeAddress(address)
	if err != nil {
		return nil, err
	}
	return key[:min(len(key), EVMAddressBytes)], nil
}

// EVMToAddress maps an 0x H160 to its SS58 account under format.
// The account id is blake2b-256("evm:" || h160).
func EVMToAddress(evm string, format uint16) (string, error) {
	raw, err := FromHex(evm)
	if err != nil {
		return "", err
	}
	if len(raw) != EVMAddressBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrEVMLength, len(raw))
	}
	msg := make([]byte, 0, 4+EVMAddressBytes)
	msg = append(msg, "evm:"...)
	msg = append(msg, raw...)
	id := blake2b.Sum256(msg)
	return EncodeAddress(id[:], format)
}

// ChecksumEVM returns the EIP-55 mixed-case form of an H160.
func ChecksumEVM(h160 []byte) string {
	return common.BytesToAddress(h160).Hex()
}
