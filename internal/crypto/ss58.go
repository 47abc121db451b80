package crypto

import (
	"errors"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// MaxSS58Format is the largest network prefix a two-byte SS58 prefix can carry.
	MaxSS58Format = 16383
)

var (
	ErrEmptyAddress    = errors.New("empty address")
	ErrAddressLength   = errors.New("invalid decoded address length")
	ErrAddressChecksum = errors.New("invalid decoded address checksum")
	ErrSS58Format      = errors.New("invalid ss58 format")
	ErrKeyLength       = errors.New("invalid public key length")
)

var (
	ss58Context = []byte("SS58PRE")

	// allowedDecodedLengths are the account-id sizes SS58 can carry.
	allowedDecodedLengths = []int{1, 2, 4, 8, 32, 33}
	// allowedEncodedLengths are the matching sizes including prefix and checksum.
	allowedEncodedLengths = []int{3, 4, 6, 10, 35, 36, 37, 38}
)

func ss58Hash(data []byte) [blake2b.Size]byte {
	buf := make([]byte, 0, len(ss58Context)+len(data))
	buf = append(buf, ss58Context...)
	buf = append(buf, data...)
	return blake2b.Sum512(buf)
}

// reservedFormat reports whether the prefix is one of the two reserved values.
func reservedFormat(format uint16) bool { return format == 46 || format == 47 }

// EncodeAddress encodes key as an SS58 address for the given network prefix.
func EncodeAddress(key []byte, format uint16) (string, error) {
	if format > MaxSS58Format || reservedFormat(format) {
		return "", fmt.Errorf("%w: %d", ErrSS58Format, format)
	}
	if !slices.Contains(allowedDecodedLengths, len(key)) {
		return "", fmt.Errorf("%w: %d bytes", ErrKeyLength, len(key))
	}

	var prefix []byte
	if format < 64 {
		prefix = []byte{byte(format)}
	} else {
		prefix = []byte{
			byte((format&0x00fc)>>2) | 0x40,
			byte(format>>8) | byte((format&0x0003)<<6),
		}
	}

	input := make([]byte, 0, len(prefix)+len(key)+2)
	input = append(input, prefix...)
	input = append(input, key...)

	sum := ss58Hash(input)
	n := 1
	if len(key) == 32 || len(key) == 33 {
		n = 2
	}
	return base58.Encode(append(input, sum[:n]...)), nil
}

// DecodeAddress returns the network prefix and account id carried by an
// address. A 0x hex string is accepted as a raw account id and reports
// format 0.
func DecodeAddress(address string) (uint16, []byte, error) {
	if address == "" {
		return 0, nil, ErrEmptyAddress
	}
	if IsHex(address) {
		b, err := FromHex(address)
		return 0, b, err
	}

	decoded := base58.Decode(address)
	if !slices.Contains(allowedEncodedLengths, len(decoded)) {
		return 0, nil, ErrAddressLength
	}

	ok, end, prefixLen, format := checkChecksum(decoded)
	if !ok {
		return 0, nil, ErrAddressChecksum
	}
	return format, slices.Clone(decoded[prefixLen:end]), nil
}

// checkChecksum validates the trailing checksum and returns the payload end
// offset, the prefix length and the decoded network prefix.
func checkChecksum(decoded []byte) (ok bool, end, prefixLen int, format uint16) {
	prefixLen = 1
	if decoded[0]&0x40 != 0 {
		prefixLen = 2
	}
	if len(decoded) < prefixLen+1 {
		return false, 0, prefixLen, 0
	}
	if prefixLen == 1 {
		format = uint16(decoded[0])
	} else {
		format = uint16(decoded[0]&0x3f)<<2 | uint16(decoded[1]>>6) | uint16(decoded[1]&0x3f)<<8
	}

	// 32/33 byte keys carry a two-byte checksum.
	isPublicKey := len(decoded) == 34+prefixLen || len(decoded) == 35+prefixLen
	end = len(decoded) - 1
	if isPublicKey {
		end = len(decoded) - 2
	}
	if end < prefixLen {
		return false, end, prefixLen, format
	}
	sum := ss58Hash(decoded[:end])

	if decoded[0]&0x80 != 0 || reservedFormat(uint16(decoded[0])) {
		return false, end, prefixLen, format
	}
	if isPublicKey {
		ok = decoded[len(decoded)-2] == sum[0] && decoded[len(decoded)-1] == sum[1]
	} else {
		ok = decoded[len(decoded)-1] == sum[0]
	}
	return ok, end, prefixLen, format
}
