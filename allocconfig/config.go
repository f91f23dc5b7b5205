// Package allocconfig holds the frozen allocation configuration: the category
// percentages, the per-chain strategy table and a digest over both.
//
// A Config is built once at startup and never changes afterwards. All state is
// unexported and every accessor returns a copy. VerifyIntegrity recomputes the
// digest so callers can still detect in-memory tampering before acting on it.
package allocconfig

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mintgene/allocation-ledger/digest"
)

// Category is one of the four fixed allocation buckets.
type Category string

const (
	Vault       Category = "vault"
	Growth      Category = "growth"
	Speculative Category = "speculative"
	Treasury    Category = "treasury"
)

// DefaultChain is the strategy table key used when no chain-specific entry exists.
const DefaultChain = "default"

var (
	ErrInvalidConfig   = errors.New("invalid allocation config")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrConfigTampered  = errors.New("allocation config tampered")
)

// Categories returns the categories in allocation order. Treasury is last and
// absorbs rounding remainders.
func Categories() []Category {
	return []Category{Vault, Growth, Speculative, Treasury}
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Config is the immutable allocation configuration.
type Config struct {
	percentages map[Category]int
	strategies  map[Category]map[string]string
	digest      string
}

// IntegrityResult reports the outcome of VerifyIntegrity.
type IntegrityResult struct {
	Valid    bool   `json:"valid"`
	Digest   string `json:"digest"`
	Expected string `json:"expected"`
}

// Snapshot is a detached copy of the configuration, safe to serialize.
type Snapshot struct {
	Percentages map[Category]int               `json:"percentages"`
	Strategies  map[Category]map[string]string `json:"strategies"`
	Digest      string                         `json:"config_digest"`
}

// New validates and freezes a configuration. The inputs are copied, so later
// changes by the caller have no effect.
func New(percentages map[Category]int, strategies map[Category]map[string]string) (*Config, error) {
	c := &Config{
		percentages: copyPercentages(percentages),
		strategies:  copyStrategies(strategies),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	d, err := c.computeDigest()
	if err != nil {
		return nil, err
	}
	c.digest = d
	return c, nil
}

func (c *Config) validate() error {
	sum := 0
	for _, cat := range Categories() {
		pct, ok := c.percentages[cat]
		if !ok {
			return fmt.Errorf("%w: missing percentage for %s", ErrInvalidConfig, cat)
		}
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: percentage for %s out of range: %d", ErrInvalidConfig, cat, pct)
		}
		sum += pct

		table, ok := c.strategies[cat]
		if !ok {
			return fmt.Errorf("%w: missing strategy table for %s", ErrInvalidConfig, cat)
		}
		if table[DefaultChain] == "" {
			return fmt.Errorf("%w: strategy table for %s has no %q entry", ErrInvalidConfig, cat, DefaultChain)
		}
	}
	if len(c.percentages) != len(Categories()) {
		return fmt.Errorf("%w: unexpected categories in percentages: %v", ErrInvalidConfig, unknownKeys(c.percentages))
	}
	if len(c.strategies) != len(Categories()) {
		return fmt.Errorf("%w: unexpected categories in strategy table", ErrInvalidConfig)
	}
	if sum != 100 {
		return fmt.Errorf("%w: percentages sum to %d, expected 100", ErrInvalidConfig, sum)
	}
	return nil
}

func (c *Config) computeDigest() (string, error) {
	return digest.Of(struct {
		Percentages map[Category]int               `json:"percentages"`
		Strategies  map[Category]map[string]string `json:"strategies"`
	}{c.percentages, c.strategies})
}

// Digest returns the digest captured at construction.
func (c *Config) Digest() string {
	return c.digest
}

// Percentages returns a copy of the percentage table.
func (c *Config) Percentages() map[Category]int {
	return copyPercentages(c.percentages)
}

// Strategies returns a copy of the strategy table.
func (c *Config) Strategies() map[Category]map[string]string {
	return copyStrategies(c.strategies)
}

// Snapshot returns a detached copy of the whole configuration.
func (c *Config) Snapshot() Snapshot {
	return Snapshot{
		Percentages: c.Percentages(),
		Strategies:  c.Strategies(),
		Digest:      c.digest,
	}
}

// Strategy resolves the strategy for a category on a chain, falling back to
// the category's default entry.
func (c *Config) Strategy(category Category, chain string) (string, error) {
	table, ok := c.strategies[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if s, ok := table[chain]; ok && s != "" {
		return s, nil
	}
	return table[DefaultChain], nil
}

// VerifyIntegrity recomputes the digest over the current state and compares
// it to the digest captured at construction.
func (c *Config) VerifyIntegrity() IntegrityResult {
	current, err := c.computeDigest()
	if err != nil {
		return IntegrityResult{Valid: false, Expected: c.digest}
	}
	return IntegrityResult{
		Valid:    current == c.digest,
		Digest:   current,
		Expected: c.digest,
	}
}

// CheckIntegrity returns ErrConfigTampered when VerifyIntegrity fails.
func (c *Config) CheckIntegrity() error {
	res := c.VerifyIntegrity()
	if !res.Valid {
		return fmt.Errorf("%w: digest %s, expected %s", ErrConfigTampered, res.Digest, res.Expected)
	}
	return nil
}

func copyPercentages(in map[Category]int) map[Category]int {
	out := make(map[Category]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyStrategies(in map[Category]map[string]string) map[Category]map[string]string {
	out := make(map[Category]map[string]string, len(in))
	for cat, table := range in {
		inner := make(map[string]string, len(table))
		for chain, s := range table {
			inner[chain] = s
		}
		out[cat] = inner
	}
	return out
}

func unknownKeys(m map[Category]int) []string {
	var keys []string
	for k := range m {
		if _, err := ParseCategory(string(k)); err != nil {
			keys = append(keys, string(k))
		}
	}
	sort.Strings(keys)
	return keys
}
