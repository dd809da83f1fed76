package replica

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsEmptyList(t *testing.T) {
	s, err := New("catalog", nil, zap.NewNop())
	require.ErrorIs(t, err, ErrNoReplicas)
	require.Nil(t, s)
}

func TestNextStartsAtSecondAddress(t *testing.T) {
	s, err := New("catalog", []string{"a", "b", "c"}, zap.NewNop())
	require.NoError(t, err)

	got := []string{s.Next(), s.Next(), s.Next(), s.Next(), s.Next(), s.Next()}
	require.Equal(t, []string{"b", "c", "a", "b", "c", "a"}, got)
}

func TestNextCoversEveryAddressOncePerCycle(t *testing.T) {
	addrs := []string{"r0", "r1", "r2", "r3", "r4"}
	s, err := New("order", addrs, zap.NewNop())
	require.NoError(t, err)

	seen := make(map[string]int)
	for range addrs {
		seen[s.Next()]++
	}
	require.Len(t, seen, len(addrs))
	for _, a := range addrs {
		require.Equal(t, 1, seen[a], a)
	}
}

func TestNextSingleReplica(t *testing.T) {
	s, err := New("order", []string{"only"}, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "only", s.Next())
	require.Equal(t, "only", s.Next())
}

func TestNextIsIndependentPerService(t *testing.T) {
	catalog, err := New("catalog", []string{"c1", "c2"}, zap.NewNop())
	require.NoError(t, err)
	order, err := New("order", []string{"o1", "o2"}, zap.NewNop())
	require.NoError(t, err)

	require.Equal(t, "c2", catalog.Next())
	require.Equal(t, "c1", catalog.Next())
	require.Equal(t, "o2", order.Next())
}

func TestNextLogsChoice(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := New("catalog", []string{"c1", "c2"}, zap.New(core))
	require.NoError(t, err)

	s.Next()

	entries := logs.FilterMessage("using replica").All()
	require.Len(t, entries, 1)
	require.Equal(t, "c2", entries[0].ContextMap()["replica"])
	require.Equal(t, "catalog", entries[0].ContextMap()["service"])
}

func TestAddrsIsACopy(t *testing.T) {
	in := []string{"a", "b"}
	s, err := New("catalog", in, zap.NewNop())
	require.NoError(t, err)

	in[0] = "mutated"
	out := s.Addrs()
	out[1] = "mutated"
	require.Equal(t, []string{"a", "b"}, s.Addrs())
}

func TestNextConcurrentCallsStayBalanced(t *testing.T) {
	s, err := New("catalog", []string{"a", "b"}, zap.NewNop())
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		seen = map[string]int{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				addr := s.Next()
				mu.Lock()
				seen[addr]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 500, seen["a"])
	require.Equal(t, 500, seen["b"])
}
