// Package crypto exposes the address primitives used by techangel.
//
// Contents
//
//   - SS58 encoding and decoding with blake2b-512 checksums (EncodeAddress,
//     DecodeAddress)
//   - Substrate <-> EVM mapping: H160 from the first 20 bytes of an account
//     id (AddressToEVM), and an account id from blake2b-256("evm:" || h160)
//     (EVMToAddress)
//   - Hex formatting and validation (ToHex, IsHex, ChecksumEVM)
//   - Short public-key fingerprints for logging (Fingerprint)
//   - A one-time readiness gate that self-tests the primitives (Gate)
//
// # Notes
//
// Nothing here is new cryptography. Hashing comes from golang.org/x/crypto,
// base58 from btcutil and hex/EIP-55 helpers from go-ethereum; this package
// only composes them into the SS58 address format.
//
// SS58 -> EVM is lossy: an H160 keeps 20 of the 32 account-id bytes, and the
// reverse direction hashes instead of padding, so a round trip never returns
// the original address.
package crypto
