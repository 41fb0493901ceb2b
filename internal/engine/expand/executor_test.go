package expand_test

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/engine/expand"
	"go.trai.ch/zerr"
)

func TestExecutor_SubmitAndAwait(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		exec := expand.NewExecutor(context.Background(), 2)
		defer exec.Shutdown()

		futs := make([]*expand.Future, 0, 8)
		for i := range 8 {
			i := i
			futs = append(futs, exec.Submit(func(_ context.Context) ([]domain.Dep, error) {
				return []domain.Dep{{Lib: domain.Lib("g/a"), Coord: &domain.Coord{Version: string(rune('0' + i))}}}, nil
			}))
		}

		// Futures resolve independently of submission order; awaiting in
		// order still yields each task's own result.
		for i, fut := range futs {
			deps, err := fut.Await()
			require.NoError(t, err)
			require.Len(t, deps, 1)
			assert.Equal(t, string(rune('0'+i)), deps[0].Coord.Version)
		}
	})
}

func TestExecutor_ErrorCapturedAsValue(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		exec := expand.NewExecutor(context.Background(), 1)
		defer exec.Shutdown()

		boom := zerr.New("fetch failed")
		ok := exec.Submit(func(_ context.Context) ([]domain.Dep, error) {
			return nil, nil
		})
		bad := exec.Submit(func(_ context.Context) ([]domain.Dep, error) {
			return nil, boom
		})

		_, err := ok.Await()
		require.NoError(t, err)

		// The failure arrives as a value on the future, not a panic.
		_, err = bad.Await()
		assert.ErrorIs(t, err, boom)
	})
}

func TestExecutor_QueuedTaskRunsAndLateSubmitIsCanceled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		exec := expand.NewExecutor(context.Background(), 1)

		release := make(chan struct{})
		running := exec.Submit(func(_ context.Context) ([]domain.Dep, error) {
			<-release
			return nil, nil
		})
		queued := exec.Submit(func(_ context.Context) ([]domain.Dep, error) {
			return nil, nil
		})

		close(release)
		_, err := running.Await()
		require.NoError(t, err)
		_, err = queued.Await()
		require.NoError(t, err)

		exec.Shutdown()

		// Submissions after shutdown resolve to the cancellation error.
		late := exec.Submit(func(_ context.Context) ([]domain.Dep, error) {
			return nil, nil
		})
		_, err = late.Await()
		assert.ErrorIs(t, err, context.Canceled)
	})
}
