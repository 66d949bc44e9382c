package risk

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cable-billing/internal/pkg/apperrors"

	"gopkg.in/yaml.v3"
)

//go:embed contract.yaml
var defaultContractYAML []byte

// Contract is the immutable feature layout the trained models expect.
type Contract struct {
	Delay   DelayContract   `yaml:"delay"`
	Default DefaultContract `yaml:"default"`
}

type DelayContract struct {
	TimeSeriesOffset int       `yaml:"timeSeriesOffset"`
	PaddingValue     float64   `yaml:"paddingValue"`
	Mean             []float64 `yaml:"mean"`
	Variance         []float64 `yaml:"variance"`
	Areas            []string  `yaml:"areas"`
	Carriers         []string  `yaml:"carriers"`
	Agents           []string  `yaml:"agents"`
}

type DefaultContract struct {
	FallbackNumerator   float64            `yaml:"fallbackNumerator"`
	FallbackDenominator float64            `yaml:"fallbackDenominator"`
	AreaRates           map[string]float64 `yaml:"areaRates"`
	AgentRates          map[string]float64 `yaml:"agentRates"`
	CarrierRates        map[string]float64 `yaml:"carrierRates"`
	GenderRates         map[string]float64 `yaml:"genderRates"`
	BoxRates            map[string]float64 `yaml:"boxRates"`
}

// LoadDefaultContract parses the contract bundled with the binary.
func LoadDefaultContract() (*Contract, error) {
	return ParseContract(defaultContractYAML)
}

// LoadContract reads a contract override from path, or the bundled one when path is empty.
func LoadContract(path string) (*Contract, error) {
	if path == "" {
		return LoadDefaultContract()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model contract %s: %w", path, err)
	}
	return ParseContract(data)
}

func ParseContract(data []byte) (*Contract, error) {
	var c Contract
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: invalid model contract: %w", apperrors.ErrInvalidArgument, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Contract) validate() error {
	d := c.Delay
	numeric := d.TimeSeriesOffset + len(numericTail)
	switch {
	case d.TimeSeriesOffset <= 0:
		return fmt.Errorf("%w: timeSeriesOffset must be positive", apperrors.ErrInvalidArgument)
	case len(d.Mean) != numeric || len(d.Variance) != numeric:
		return fmt.Errorf("%w: mean and variance need %d entries", apperrors.ErrInvalidArgument, numeric)
	case len(d.Areas) == 0 || len(d.Carriers) != carrierCount || len(d.Agents) == 0:
		return fmt.Errorf("%w: delay contract categories are incomplete", apperrors.ErrInvalidArgument)
	case c.Default.FallbackDenominator == 0:
		return fmt.Errorf("%w: fallback denominator cannot be zero", apperrors.ErrInvalidArgument)
	}
	for i, v := range d.Variance {
		if v == 0 {
			return fmt.Errorf("%w: variance[%d] is zero", apperrors.ErrInvalidArgument, i)
		}
	}
	return nil
}

// DelayWidth is the length of the delay model input vector.
func (c *Contract) DelayWidth() int {
	d := c.Delay
	return len(d.Mean) + len(d.Areas) + 2 + len(d.Carriers) + len(d.Agents)
}

// FallbackRate is used for categories the default model never saw.
func (c *Contract) FallbackRate() float64 {
	return c.Default.FallbackNumerator / c.Default.FallbackDenominator
}

func (c *Contract) rate(table map[string]float64, key string) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	if v, ok := table[strings.TrimSpace(key)]; ok {
		return v
	}
	return c.FallbackRate()
}

// indexOf matches trimmed names so "5th Croos Kallady" finds "5th Croos Kallady ".
func indexOf(values []string, name string) int {
	for i, v := range values {
		if v == name {
			return i
		}
	}
	trimmed := strings.TrimSpace(name)
	for i, v := range values {
		if strings.TrimSpace(v) == trimmed {
			return i
		}
	}
	return -1
}
