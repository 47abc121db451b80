package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"techangel/internal/crypto"
)

const (
	aliceKey      = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceGeneric  = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	alicePolkadot = "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := crypto.FromHex(s)
	require.NoError(t, err)
	return b
}

func TestEncodeAddress_KnownVectors(t *testing.T) {
	key := mustHex(t, aliceKey)

	got, err := crypto.EncodeAddress(key, 42)
	require.NoError(t, err)
	assert.Equal(t, aliceGeneric, got)

	got, err = crypto.EncodeAddress(key, 0)
	require.NoError(t, err)
	assert.Equal(t, alicePolkadot, got)

	got, err = crypto.EncodeAddress(key, 2)
	require.NoError(t, err)
	assert.Equal(t, "HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F", got)
}

func TestDecodeAddress_KnownVectors(t *testing.T) {
	for addr, want := range map[string]uint16{aliceGeneric: 42, alicePolkadot: 0} {
		format, key, err := crypto.DecodeAddress(addr)
		require.NoError(t, err, addr)
		assert.Equal(t, want, format)
		assert.Equal(t, aliceKey, crypto.ToHex(key))
	}
}

func TestDecodeAddress_TwoBytePrefixRoundTrip(t *testing.T) {
	key := mustHex(t, aliceKey)
	for _, format := range []uint16{64, 255, 1284, 12850, crypto.MaxSS58Format} {
		addr, err := crypto.EncodeAddress(key, format)
		require.NoError(t, err, format)

		gotFormat, gotKey, err := crypto.DecodeAddress(addr)
		require.NoError(t, err, format)
		assert.Equal(t, format, gotFormat)
		assert.Equal(t, key, gotKey)
	}
}

func TestDecodeAddress_ShortKeysUseOneByteChecksum(t *testing.T) {
	for _, key := range [][]byte{{1}, {1, 2}, {1, 2, 3, 4}, {1, 2, 3, 4, 5, 6, 7, 8}} {
		addr, err := crypto.EncodeAddress(key, 42)
		require.NoError(t, err)
		_, got, err := crypto.DecodeAddress(addr)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	}
}

func TestDecodeAddress_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"empty", "", crypto.ErrEmptyAddress},
		{"bad checksum", aliceGeneric[:len(aliceGeneric)-1] + "Z", crypto.ErrAddressChecksum},
		{"too short", "5G", crypto.ErrAddressLength},
		{"not base58", "0OIl", crypto.ErrAddressLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := crypto.DecodeAddress(tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecodeAddress_HexPassthrough(t *testing.T) {
	format, key, err := crypto.DecodeAddress(aliceKey)
	require.NoError(t, err)
	assert.Zero(t, format)
	assert.Equal(t, aliceKey, crypto.ToHex(key))
}

func TestEncodeAddress_Rejects(t *testing.T) {
	key := mustHex(t, aliceKey)
	for _, format := range []uint16{46, 47, crypto.MaxSS58Format + 1} {
		_, err := crypto.EncodeAddress(key, format)
		assert.ErrorIs(t, err, crypto.ErrSS58Format, format)
	}
	_, err := crypto.EncodeAddress(key[:20], 42)
	assert.ErrorIs(t, err, crypto.ErrKeyLength)
}

func TestAddressToEVM_Truncates(t *testing.T) {
	evm, err := crypto.AddressToEVM(aliceGeneric)
	require.NoError(t, err)
	assert.Equal(t, "0xd43593c715fdd31c61141abd04a99fd6822c8558", crypto.ToHex(evm))
}

func TestAddressToEVM_ShortAccountIDs(t *testing.T) {
	short := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	addr, err := crypto.EncodeAddress(short, 42)
	require.NoError(t, err)

	evm, err := crypto.AddressToEVM(addr)
	require.NoError(t, err)
	assert.Equal(t, short, evm)

	evm, err = crypto.AddressToEVM("0x1234")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x34}, evm)
}

func TestEVMToAddress_HashesWithPrefix(t *testing.T) {
	h160 := "0xd43593c715fdd31c61141abd04a99fd6822c8558"
	addr, err := crypto.EVMToAddress(h160, 42)
	require.NoError(t, err)

	assert.Equal(t, "5FrLxJsyJ5x9n2rmxFwosFraxFCKcXZDngRLNectCn64UjtZ", addr)

	want := blake2b.Sum256(append([]byte("evm:"), mustHex(t, h160)...))
	format, key, err := crypto.DecodeAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, uint16(42), format)
	assert.Equal(t, want[:], key)
}

func TestRoundTrip_IsLossy(t *testing.T) {
	evm, err := crypto.AddressToEVM(aliceGeneric)
	require.NoError(t, err)
	back, err := crypto.EVMToAddress(crypto.ToHex(evm), 42)
	require.NoError(t, err)
	assert.NotEqual(t, aliceGeneric, back)
}

func TestEVMToAddress_RejectsWrongLength(t *testing.T) {
	_, err := crypto.EVMToAddress("0xd43593c715fdd31c", 42)
	assert.ErrorIs(t, err, crypto.ErrEVMLength)

	_, err = crypto.EVMToAddress("0xzz", 42)
	assert.Error(t, err)
}

func TestIsHex(t *testing.T) {
	assert.True(t, crypto.IsHex("0x"))
	assert.True(t, crypto.IsHex("0xABcd"))
	assert.False(t, crypto.IsHex("abcd"))
	assert.False(t, crypto.IsHex("0xabc"))
	assert.False(t, crypto.IsHex("0xgg"))
	assert.False(t, crypto.IsHex("0X1234"))
}

func TestDecodeAddress_UpperHexPrefixIsNotHex(t *testing.T) {
	_, _, err := crypto.DecodeAddress("0X1234")
	assert.Error(t, err)
}

func TestChecksumEVM(t *testing.T) {
	raw := mustHex(t, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", crypto.ChecksumEVM(raw))
}

func TestFingerprint(t *testing.T) {
	key := mustHex(t, aliceKey)

	fp := crypto.Fingerprint(key)
	assert.Regexp(t, `^[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}$`, fp)
	assert.Equal(t, fp, crypto.Fingerprint(key))

	other := append([]byte(nil), key...)
	other[0] ^= 1
	assert.NotEqual(t, fp, crypto.Fingerprint(other))
	assert.Empty(t, crypto.Fingerprint(nil))
}
