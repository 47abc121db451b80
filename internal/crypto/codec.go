package crypto

import "techangel/internal/domain"

// Codec adapts the package functions to domain.AddressCodec.
type Codec struct{}

func (Codec) DecodeAddress(address string) (domain.SS58Format, []byte, error) {
	f, key, err := DecodeAddress(address)
	return domain.SS58Format(f), key, err
}

func (Codec) EncodeAddress(key []byte, format domain.SS58Format) (string, error) {
	return EncodeAddress(key, uint16(format))
}

func (Codec) AddressToEVM(address string) ([]byte, error) { return AddressToEVM(address) }

func (Codec) EVMToAddress(evm string, format domain.SS58Format) (string, error) {
	return EVMToAddress(evm, uint16(format))
}

var (
	_ domain.AddressCodec  = Codec{}
	_ domain.ReadinessGate = (*Gate)(nil)
)
