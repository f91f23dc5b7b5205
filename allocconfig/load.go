package allocconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML shape.
type fileConfig struct {
	Percentages map[Category]int               `yaml:"percentages"`
	Strategies  map[Category]map[string]string `yaml:"strategies"`
}

func defaultFileConfig() *fileConfig {
	return &fileConfig{
		Percentages: map[Category]int{
			Vault:       40,
			Growth:      30,
			Speculative: 20,
			Treasury:    10,
		},
		Strategies: map[Category]map[string]string{
			Vault: {
				"solana":   "solana_validator_staking",
				"ethereum": "lido_staking",
				"skale":    "skale_validator_staking",
				"default":  "stablecoin_vault",
			},
			Growth: {
				"solana":   "marinade_liquid_staking",
				"ethereum": "aave_lending",
				"default":  "aave_lending",
			},
			Speculative: {
				"solana":  "raydium_liquidity",
				"skale":   "ruby_exchange_liquidity",
				"default": "uniswap_v3_liquidity",
			},
			Treasury: {
				"default": "treasury_multisig",
			},
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	fc := defaultFileConfig()
	cfg, err := New(fc.Percentages, fc.Strategies)
	if err != nil {
		panic(fmt.Sprintf("allocconfig: built-in defaults invalid: %v", err))
	}
	return cfg
}

// Parse builds a Config from YAML. Fields present in the document replace the
// defaults; a category's strategy table is replaced as a whole.
func Parse(data []byte) (*Config, error) {
	fc := defaultFileConfig()
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse allocation config: %w", err)
	}
	return New(fc.Percentages, fc.Strategies)
}

// Load reads the configuration from path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read allocation config: %w", err)
	}
	return Parse(data)
}
