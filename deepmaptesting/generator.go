package deepmaptesting

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-deepmap/deepmap"
)

// PathScheme selects the vocabulary generated key sequences draw their
// sub-keys from. The schemes differ in how much collision pressure they put
// on shared prefixes.
type PathScheme int

const (
	// SchemeWords draws sub-keys from the faker's word list. Prefixes
	// collide often enough to exercise node sharing.
	SchemeWords PathScheme = iota
	// SchemeURL shapes each sequence like a url: a domain sub-key first,
	// then word sub-keys for the path segments.
	SchemeURL
	// SchemeUUID draws every sub-key from the seeded uuid stream, so
	// generated sequences essentially never collide.
	SchemeUUID
	// SchemeTinyAlphabet draws sub-keys from a two letter alphabet,
	// forcing heavy collisions and deep shared spines.
	SchemeTinyAlphabet
)

var (
	ErrKeySpaceExhausted = errors.New("deepmaptesting: scheme cannot produce the requested number of distinct key sequences")
)

const (
	// DefaultMaxDepth bounds generated sequence length when the config
	// leaves MaxDepth zero.
	DefaultMaxDepth = 6

	// distinctMissLimit caps the rerolls DistinctEntries will spend on a
	// scheme before concluding its key space is spent.
	distinctMissLimit = 10000
)

type TestGeneratorConfig struct {
	// Seed fixes both RNG streams. It is normal to force it to some fixed
	// value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	// MaxDepth bounds the length of generated key sequences. Zero means
	// DefaultMaxDepth. The empty sequence is always in range.
	MaxDepth int
	Scheme   PathScheme
}

// EntryFactory generates the ith entry of a batch. Implementations draw on
// the generator's seeded sources so that batches are reproducible run to
// run.
type EntryFactory func(g *TestGenerator, i int) deepmap.Entry[string, string]

type TestGenerator struct {
	T     *testing.T
	Rand  *rand.Rand
	Faker *gofakeit.Faker
	Cfg   TestGeneratorConfig

	entryFactory EntryFactory
}

func NewTestGenerator(
	t *testing.T, seed int64, cfg TestGeneratorConfig, entryFactory EntryFactory,
) TestGenerator {
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if entryFactory == nil {
		entryFactory = GenerateSchemeEntry
	}
	return TestGenerator{
		T:            t,
		Rand:         rand.New(rand.NewSource(seed)),
		Faker:        gofakeit.New(seed),
		Cfg:          cfg,
		entryFactory: entryFactory,
	}
}

// GenerateSchemeEntry is the default EntryFactory: a key sequence drawn
// from the configured scheme paired with a label stamped value.
func GenerateSchemeEntry(g *TestGenerator, i int) deepmap.Entry[string, string] {
	return deepmap.Entry[string, string]{
		Key:   g.RandomKeySequence(),
		Value: g.Value(i),
	}
}

// NewRandomUUIDString draws a uuid from the seeded stream, so repeated runs
// see the same ids.
func (g *TestGenerator) NewRandomUUIDString(t *testing.T) string {
	id, err := uuid.NewRandomFromReader(g.Rand)
	require.NoError(t, err)
	return id.String()
}

// KeySequence generates a sequence of exactly depth sub-keys from the
// configured scheme. depth 0 gives the empty sequence.
func (g *TestGenerator) KeySequence(depth int) []string {
	if depth == 0 {
		return nil
	}
	ks := make([]string, 0, depth)
	switch g.Cfg.Scheme {
	case SchemeUUID:
		for len(ks) < depth {
			ks = append(ks, g.NewRandomUUIDString(g.T))
		}
	case SchemeURL:
		ks = append(ks, g.Faker.DomainName())
		for len(ks) < depth {
			ks = append(ks, strings.ToLower(g.Faker.Word()))
		}
	case SchemeTinyAlphabet:
		for len(ks) < depth {
			ks = append(ks, string(rune('a'+g.Rand.Intn(2))))
		}
	default:
		for len(ks) < depth {
			ks = append(ks, strings.ToLower(g.Faker.Word()))
		}
	}
	return ks
}

// RandomKeySequence generates a sequence of random depth, from empty up to
// the configured MaxDepth inclusive.
func (g *TestGenerator) RandomKeySequence() []string {
	return g.KeySequence(g.Rand.Intn(g.Cfg.MaxDepth + 1))
}

// Value generates the value for the ith entry of a batch. The label prefix
// keeps values from different tests distinguishable in failure output.
func (g *TestGenerator) Value(i int) string {
	return fmt.Sprintf("%s-%d-%s", g.Cfg.TestLabelPrefix, i, g.Faker.LetterN(8))
}

// GenerateEntries produces n entries from the configured factory with no
// distinctness guarantee; duplicate key sequences are possible and are the
// point for overwrite workloads.
func (g *TestGenerator) GenerateEntries(n int) []deepmap.Entry[string, string] {
	entries := make([]deepmap.Entry[string, string], 0, n)
	for i := range n {
		entries = append(entries, g.entryFactory(g, i))
	}
	return entries
}

// DistinctEntries produces n entries whose key sequences are pairwise
// distinct. Generous schemes deliver in one pass; a scheme whose key space
// is too small for n gives ErrKeySpaceExhausted along with the entries
// gathered before it ran dry.
func (g *TestGenerator) DistinctEntries(n int) ([]deepmap.Entry[string, string], error) {
	entries := make([]deepmap.Entry[string, string], 0, n)
	seen := make(map[string]bool, n)
	misses := 0
	for len(entries) < n {
		e := g.entryFactory(g, len(entries))
		fp := PathFingerprint(e.Key)
		if seen[fp] {
			misses++
			if misses > distinctMissLimit {
				return entries, fmt.Errorf(
					"%w: %d of %d after %d rerolls", ErrKeySpaceExhausted, len(entries), n, misses)
			}
			continue
		}
		seen[fp] = true
		entries = append(entries, e)
	}
	return entries, nil
}

// MustDistinctEntries is DistinctEntries failing the test on exhaustion.
func (g *TestGenerator) MustDistinctEntries(n int) []deepmap.Entry[string, string] {
	entries, err := g.DistinctEntries(n)
	if err != nil {
		g.T.Fatalf("generating %d distinct key sequences: %v", n, err)
	}
	return entries
}

// PathFingerprint encodes a key sequence as a single string such that two
// sequences collide only when they are equal. Sub-keys are length prefixed,
// so boundaries survive sub-keys containing any would-be separator.
func PathFingerprint(ks []string) string {
	var sb strings.Builder
	for _, k := range ks {
		fmt.Fprintf(&sb, "%d:%s", len(k), k)
	}
	return sb.String()
}
