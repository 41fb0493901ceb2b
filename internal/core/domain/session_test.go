package domain_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestSession_MemoizeComputesOnce(t *testing.T) {
	s := domain.NewSession()

	calls := 0
	compute := func() (any, error) {
		calls++
		return "value", nil
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.Memoize("key", compute)
			assert.NoError(t, err)
			assert.Equal(t, "value", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestSession_ErrorsAreCached(t *testing.T) {
	s := domain.NewSession()
	boom := zerr.New("lookup failed")

	calls := 0
	_, err := s.Memoize("key", func() (any, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Memoize("key", func() (any, error) {
		calls++
		return "late", nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestSessionFromContext(t *testing.T) {
	assert.Nil(t, domain.SessionFrom(context.Background()))

	s := domain.NewSession()
	ctx := domain.WithSession(context.Background(), s)
	assert.Same(t, s, domain.SessionFrom(ctx))
}
