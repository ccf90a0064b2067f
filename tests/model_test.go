package tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-deepmap/deepmap"
	"github.com/forestrie/go-deepmap/deepmaptesting"
)

// TestAgainstFlatModel drives a deep map and a flat builtin map through the
// same randomized mutation stream. The flat map keys on the injective
// fingerprint of each sequence, so the two must agree on membership, count
// and content at every step.
func TestAgainstFlatModel(t *testing.T) {
	tc, g, _ := deepmaptesting.NewDefaultTestContext(t, "TestAgainstFlatModel")

	const rounds = 5000

	m := deepmap.New[string, string]()
	model := map[string]deepmap.Entry[string, string]{}

	var sets, overwrites, deletes, deleteMisses, creates int

	for i := range rounds {
		if i == rounds/2 {
			m.Clear()
			clear(model)
		}
		switch op := g.Rand.Intn(10); {
		case op < 4:
			ks := g.RandomKeySequence()
			v := g.Value(i)
			fp := deepmaptesting.PathFingerprint(ks)
			if _, ok := model[fp]; ok {
				overwrites++
			} else {
				sets++
			}
			m.Set(ks, v)
			model[fp] = deepmap.Entry[string, string]{Key: ks, Value: v}
		case op < 7:
			ks := g.RandomKeySequence()
			fp := deepmaptesting.PathFingerprint(ks)
			_, inModel := model[fp]
			require.Equal(t, inModel, m.Delete(ks), "Delete(%v) disagreed with the model at round %d", ks, i)
			if inModel {
				deletes++
			} else {
				deleteMisses++
			}
			delete(model, fp)
		case op < 9:
			ks := g.RandomKeySequence()
			fp := deepmaptesting.PathFingerprint(ks)
			prior, inModel := model[fp]
			v := m.GetOrCreate(ks, func() string {
				creates++
				return g.Value(i)
			})
			if inModel {
				require.Equal(t, prior.Value, v, "GetOrCreate(%v) must return the stored value at round %d", ks, i)
			} else {
				model[fp] = deepmap.Entry[string, string]{Key: ks, Value: v}
			}
		default:
			ks := g.RandomKeySequence()
			fp := deepmaptesting.PathFingerprint(ks)
			want, inModel := model[fp]
			got, ok := m.Get(ks)
			require.Equal(t, inModel, ok, "Get(%v) presence disagreed with the model at round %d", ks, i)
			if ok {
				require.Equal(t, want.Value, got)
			}
			require.Equal(t, inModel, m.Has(ks))
		}
		require.Equal(t, len(model), m.Len(), "entry count diverged at round %d", i)
	}

	tc.Log.Infof(
		"rounds=%d sets=%d overwrites=%d deletes=%d deleteMisses=%d creates=%d final=%d",
		rounds, sets, overwrites, deletes, deleteMisses, creates, m.Len())

	// the surviving content must match exactly, and each yielded sequence
	// must be held by the model under its own fingerprint
	visited := 0
	for ks, v := range m.All() {
		want, ok := model[deepmaptesting.PathFingerprint(ks)]
		require.True(t, ok, "All() yielded %v which the model does not hold", ks)
		require.Equal(t, want.Value, v)
		visited++
	}
	require.Equal(t, len(model), visited)
}
