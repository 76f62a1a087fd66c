package exptree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"exptree/pkg/eytzinger"
	"exptree/pkg/exptree"
)

// TestAtMostOnePresence exercises property 5 from the black-box surface:
// for any sequence of inserts, a Get for a key returns exactly the last
// value Put for that key.
func TestAtMostOnePresence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tr := exptree.New[int32, int32]()
	last := make(map[int32]int32)

	for i := 0; i < 3000; i++ {
		k := int32(rng.Intn(500))
		v := rng.Int31()
		_, err := tr.Put(k, v)
		require.NoError(t, err)
		last[k] = v
	}

	for k, v := range last {
		got, ok := tr.Get(k)
		require.True(t, ok, "key %d should be present", k)
		require.Equal(t, v, got, "key %d", k)
	}
}

// TestIdempotentReplace is property 6: put(k,v); put(k,v) must leave the
// tree equal, by key/value contents, to a single put(k,v).
func TestIdempotentReplace(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	once := exptree.New[int32, int32]()
	twice := exptree.New[int32, int32]()

	for i := 0; i < 500; i++ {
		k := int32(rng.Intn(200))
		v := rng.Int31()

		_, err := once.Put(k, v)
		require.NoError(t, err)

		_, err = twice.Put(k, v)
		require.NoError(t, err)
		_, err = twice.Put(k, v)
		require.NoError(t, err)
	}

	for k := int32(0); k < 200; k++ {
		v1, ok1 := once.Get(k)
		v2, ok2 := twice.Get(k)
		require.Equal(t, ok1, ok2, "key %d presence", k)
		if ok1 {
			require.Equal(t, v1, v2, "key %d value", k)
		}
	}
}

// TestRoundTripIndexingProperty is property 4, exercised through the
// package's exported surface across a spread of sizes up to 2^16 (a
// smaller ceiling than the 2^20 the full property calls for, kept here
// for test runtime; pkg/eytzinger's own test suite covers the full
// range).
func TestRoundTripIndexingProperty(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 255, 256, 4097, 1 << 16} {
		for _, i := range []int{0, 1, n / 2, n - 1} {
			if i < 0 || i >= n {
				continue
			}
			e := eytzinger.FromLinear(i, n)
			require.Equal(t, i, eytzinger.ToLinear(e, n), "n=%d i=%d", n, i)
		}
	}
}
