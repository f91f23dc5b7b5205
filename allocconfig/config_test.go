package allocconfig

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTables() (map[Category]int, map[Category]map[string]string) {
	fc := defaultFileConfig()
	return fc.Percentages, fc.Strategies
}

func TestNewRejectsInvalidPercentages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p map[Category]int, s map[Category]map[string]string)
	}{
		{"sum below 100", func(p map[Category]int, _ map[Category]map[string]string) { p[Vault] = 39 }},
		{"sum above 100", func(p map[Category]int, _ map[Category]map[string]string) { p[Treasury] = 11 }},
		{"missing category", func(p map[Category]int, _ map[Category]map[string]string) {
			delete(p, Growth)
			p[Vault] = 70
		}},
		{"negative percentage", func(p map[Category]int, _ map[Category]map[string]string) {
			p[Vault] = -10
			p[Growth] = 80
		}},
		{"extra category", func(p map[Category]int, _ map[Category]map[string]string) { p["moonshot"] = 0 }},
		{"missing default strategy", func(_ map[Category]int, s map[Category]map[string]string) {
			delete(s[Treasury], DefaultChain)
		}},
		{"missing strategy table", func(_ map[Category]int, s map[Category]map[string]string) { delete(s, Growth) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := validTables()
			tt.mutate(p, s)
			_, err := New(p, s)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	want := map[Category]int{Vault: 40, Growth: 30, Speculative: 20, Treasury: 10}
	if diff := cmp.Diff(want, cfg.Percentages()); diff != "" {
		t.Errorf("percentages mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, cfg.Digest(), 64)
}

func TestStrategyLookup(t *testing.T) {
	cfg := Default()

	s, err := cfg.Strategy(Vault, "solana")
	require.NoError(t, err)
	assert.Equal(t, "solana_validator_staking", s)

	s, err = cfg.Strategy(Vault, "polygon")
	require.NoError(t, err)
	assert.Equal(t, "stablecoin_vault", s)

	s, err = cfg.Strategy(Treasury, "solana")
	require.NoError(t, err)
	assert.Equal(t, "treasury_multisig", s)

	_, err = cfg.Strategy("moonshot", "solana")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestAccessorsReturnCopies(t *testing.T) {
	cfg := Default()

	p := cfg.Percentages()
	p[Vault] = 99
	s := cfg.Strategies()
	s[Vault]["solana"] = "rug_pull"
	snap := cfg.Snapshot()
	snap.Percentages[Growth] = 0

	assert.Equal(t, 40, cfg.Percentages()[Vault])
	assert.Equal(t, 30, cfg.Percentages()[Growth])
	got, err := cfg.Strategy(Vault, "solana")
	require.NoError(t, err)
	assert.Equal(t, "solana_validator_staking", got)
	assert.True(t, cfg.VerifyIntegrity().Valid)
}

func TestNewCopiesInputs(t *testing.T) {
	p, s := validTables()
	cfg, err := New(p, s)
	require.NoError(t, err)

	p[Vault] = 0
	s[Vault]["solana"] = "changed"

	assert.Equal(t, 40, cfg.Percentages()[Vault])
	assert.NoError(t, cfg.CheckIntegrity())
}

func TestVerifyIntegrityDetectsTampering(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.CheckIntegrity())

	// Only code inside this package can reach the live maps.
	cfg.percentages[Vault] = 50
	cfg.percentages[Treasury] = 0

	res := cfg.VerifyIntegrity()
	assert.False(t, res.Valid)
	assert.NotEqual(t, res.Expected, res.Digest)
	assert.True(t, errors.Is(cfg.CheckIntegrity(), ErrConfigTampered))
}

func TestVerifyIntegrityDetectsStrategyTampering(t *testing.T) {
	cfg := Default()
	cfg.strategies[Growth]["solana"] = "somewhere_else"
	assert.ErrorIs(t, cfg.CheckIntegrity(), ErrConfigTampered)
}

func TestDigestIsStable(t *testing.T) {
	p, s := validTables()
	a, err := New(p, s)
	require.NoError(t, err)
	b, err := New(p, s)
	require.NoError(t, err)
	assert.Equal(t, a.Digest(), b.Digest())

	p[Vault], p[Growth] = 30, 40
	c, err := New(p, s)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), c.Digest())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("speculative")
	require.NoError(t, err)
	assert.Equal(t, Speculative, c)

	_, err = ParseCategory("VAULT")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestSplitTotal(t *testing.T) {
	s := Split{Vault: decimal.RequireFromString("1.10"), Treasury: decimal.RequireFromString("2.20")}
	assert.True(t, s.Total().Equal(decimal.RequireFromString("3.30")))
}
