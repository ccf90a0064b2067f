// Package deepmaptesting provides the shared test harness for exercising
// deep maps: a context carrying a configured logger, and a seeded generator
// for reproducible key sequence workloads.
package deepmaptesting

import (
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	// We seed the RNGs from Seed. It is normal to force it to some fixed
	// value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NewDefaultTestContext returns a context, generator and config wired
// together with a fixed seed, which is what almost every test wants.
func NewDefaultTestContext(
	t *testing.T,
	testLabelPrefix string,
) (TestContext, TestGenerator, TestConfig) {
	cfg := TestConfig{
		Seed:            (1698342521) * 1000,
		TestLabelPrefix: strings.ReplaceAll(testLabelPrefix, " ", "_"),
	}

	tc := NewTestContext(t, cfg)
	g := NewTestGenerator(
		t, cfg.Seed,
		TestGeneratorConfig{
			Seed:            cfg.Seed,
			TestLabelPrefix: cfg.TestLabelPrefix,
		},
		GenerateSchemeEntry,
	)
	return tc, g, cfg
}
