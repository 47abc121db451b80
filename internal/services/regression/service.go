package regression

import (
	"fmt"

	"go.uber.org/zap"

	"techangel/internal/domain"
)

// Service serves datasets, curves and model descriptions.
type Service struct {
	catalog catalog
	log     *zap.Logger
}

// New loads the embedded model catalog.
func New(log *zap.Logger) (*Service, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{catalog: c, log: log.Named("regression")}, nil
}

// Dataset returns the synthetic samples for seed. Equal seeds give equal data.
func (s *Service) Dataset(seed uint64) []domain.Sample {
	samples := Generate(newRand(seed))
	s.log.Debug("dataset generated", zap.Uint64("seed", seed), zap.Int("samples", len(samples)))
	return samples
}

// Models returns every model description in display order.
func (s *Service) Models() []domain.ModelInfo {
	out := make([]domain.ModelInfo, 0, len(order))
	for _, name := range order {
		out = append(out, s.catalog[name])
	}
	return out
}

// Info returns the description of one model.
func (s *Service) Info(name domain.ModelName) (domain.ModelInfo, error) {
	info, ok := s.catalog[name]
	if !ok {
		return domain.ModelInfo{}, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return info, nil
}

func (s *Service) Predict(name domain.ModelName, samples []domain.Sample) ([]domain.Prediction, error) {
	return Predict(name, samples)
}

func (s *Service) Score(name domain.ModelName, samples []domain.Sample) (domain.ModelScore, error) {
	return Score(name, samples)
}

// Compile-time assertion that Service implements domain.RegressionService.
var _ domain.RegressionService = (*Service)(nil)
