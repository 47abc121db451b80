package converter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"techangel/internal/crypto"
	"techangel/internal/domain"
)

// evmAddressLen is "0x" plus 40 hex digits.
const evmAddressLen = 2 + 2*crypto.EVMAddressBytes

var (
	ErrNotReady       = errors.New("crypto not ready")
	ErrInitFailed     = errors.New("crypto initialization failed")
	ErrMissingInput   = errors.New("missing address")
	ErrInvalidAddress = errors.New("invalid address")

	// ErrMalformedEVM is an ErrInvalidAddress caught by the shape check,
	// before the codec is consulted.
	ErrMalformedEVM = fmt.Errorf("%w: expected 0x followed by 40 hex digits", ErrInvalidAddress)
)

// Service converts addresses once the readiness gate has resolved.
type Service struct {
	codec domain.AddressCodec
	gate  domain.ReadinessGate
	log   *zap.Logger
}

// New returns a converter backed by codec and gated by gate.
func New(codec domain.AddressCodec, gate domain.ReadinessGate, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{codec: codec, gate: gate, log: log.Named("converter")}
}

// Ready reports whether conversions are available.
func (s *Service) Ready() bool { return s.gate.Ready() }

func (s *Service) checkReady() error {
	if s.gate.Ready() {
		return nil
	}
	if err := s.gate.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	return ErrNotReady
}

// ToEVM derives the H160 address for an SS58 address.
func (s *Service) ToEVM(ctx context.Context, address string) (domain.EVMConversion, error) {
	if err := s.checkReady(); err != nil {
		return domain.EVMConversion{}, err
	}
	addr := strings.TrimSpace(address)
	if addr == "" {
		return domain.EVMConversion{}, ErrMissingInput
	}

	evm, err := s.codec.AddressToEVM(addr)
	if err != nil {
		return domain.EVMConversion{}, s.reject("to-evm", addr, err)
	}
	format, pub, err := s.codec.DecodeAddress(addr)
	if err != nil {
		return domain.EVMConversion{}, s.reject("to-evm", addr, err)
	}

	s.log.Debug("converted", zap.String("op", "to-evm"), zap.String("key", crypto.Fingerprint(pub)))
	out := domain.EVMConversion{
		Input:     domain.SS58Address(addr),
		EVM:       domain.EVMAddress(crypto.ToHex(evm)),
		PublicKey: pub,
		Format:    format,
	}
	// Short account ids have no H160 to checksum.
	if len(evm) == crypto.EVMAddressBytes {
		out.Checksummed = crypto.ChecksumEVM(evm)
	}
	return out, nil
}

// ToSS58 maps an H160 address to its SS58 account under format.
func (s *Service) ToSS58(ctx context.Context, address string, format domain.SS58Format) (domain.SS58Conversion, error) {
	if err := s.checkReady(); err != nil {
		return domain.SS58Conversion{}, err
	}
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return domain.SS58Conversion{}, ErrMissingInput
	}
	clean := strings.ToLower(trimmed)
	if !crypto.IsHex(clean) || len(clean) != evmAddressLen {
		return domain.SS58Conversion{}, ErrMalformedEVM
	}

	ss58, err := s.codec.EVMToAddress(clean, format)
	if err != nil {
		return domain.SS58Conversion{}, s.reject("to-ss58", clean, err)
	}
	_, pub, err := s.codec.DecodeAddress(ss58)
	if err != nil {
		return domain.SS58Conversion{}, s.reject("to-ss58", clean, err)
	}

	s.log.Debug("converted", zap.String("op", "to-ss58"), zap.String("key", crypto.Fingerprint(pub)))
	return domain.SS58Conversion{
		Input:     domain.EVMAddress(clean),
		SS58:      domain.SS58Address(ss58),
		PublicKey: pub,
		Format:    format,
	}, nil
}

// Decode splits an address into its network prefix and public key.
func (s *Service) Decode(ctx context.Context, address string) (domain.DecodedAddress, error) {
	if err := s.checkReady(); err != nil {
		return domain.DecodedAddress{}, err
	}
	addr := strings.TrimSpace(address)
	if addr == "" {
		return domain.DecodedAddress{}, ErrMissingInput
	}
	format, pub, err := s.codec.DecodeAddress(addr)
	if err != nil {
		return domain.DecodedAddress{}, s.reject("decode", addr, err)
	}
	return domain.DecodedAddress{Input: addr, Format: format, PublicKey: pub}, nil
}

func (s *Service) reject(op, input string, err error) error {
	s.log.Debug("rejected address", zap.String("op", op), zap.String("input", input), zap.Error(err))
	return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
}

// Compile-time assertion that Service implements domain.ConverterService.
var _ domain.ConverterService = (*Service)(nil)
