package hsml

import (
	"sync"
	"testing"
	"time"

	"github.com/hsml-lab/hsml/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileContentWithCache(t *testing.T) {
	input := ".card\n  p cached\n"

	first, err := CompileContent(input, WithCache())
	require.NoError(t, err)
	second, err := CompileContent(input, WithCache())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, `<div class="card"><p>cached</p></div>`, first)
}

func TestCompileContentWithCacheConcurrent(t *testing.T) {
	input := "section\n  h1 heading\n  p body\n"
	want, err := CompileContent(input)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 20)
	errs := make([]error, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = CompileContent(input, WithCache())
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

func TestCachedParseErrorNotCached(t *testing.T) {
	// failed parses never enter the cache, so the error repeats
	_, err := CompileContent("h1#a#b", WithCache())
	require.Error(t, err)
	_, err = CompileContent("h1#a#b", WithCache())
	require.Error(t, err)
}

func TestHashSourceIsStable(t *testing.T) {
	assert.Equal(t, hashSource("p hello"), hashSource("p hello"))
	assert.NotEqual(t, hashSource("p hello"), hashSource("p goodbye"))
}

// helper to clear singleflight state between tests
func resetSingleflight() {
	sfMutex.Lock()
	sfCalls = make(map[uint64]*sfCall)
	sfMutex.Unlock()
}

func TestSingleflightParseDeduplicates(t *testing.T) {
	resetSingleflight()

	hash := uint64(42)
	release := make(chan struct{})
	shared := &parser.RootNode{}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = singleflightParse(hash, func() (*parser.RootNode, error) {
			<-release
			return shared, nil
		})
	}()

	time.Sleep(10 * time.Millisecond) // allow first call to register

	waiters := make([]*parser.RootNode, 5)
	for i := range waiters {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			waiters[i], _ = singleflightParse(hash, func() (*parser.RootNode, error) {
				t.Error("duplicate parse executed")
				return nil, nil
			})
		}(i)
	}

	time.Sleep(10 * time.Millisecond) // allow waiters to block
	close(release)
	wg.Wait()

	for _, root := range waiters {
		assert.Same(t, shared, root)
	}
}
