package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared/db"
)

func TestDBSequenceAllocator_PerDay(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := repos.sequence.Next(ctx, "20250101")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := repos.sequence.Next(ctx, "20250102")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got, "a new day starts over")
}

func TestDBSequenceAllocator_ConcurrentTransactions(t *testing.T) {
	repos := newTestRepos(t)
	tm := db.NewTransactionManager(repos.db)

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
				seq, err := repos.sequence.Next(ctx, "20250301")
				if err != nil {
					return err
				}
				mu.Lock()
				seen[seq] = true
				mu.Unlock()
				return nil
			})
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, seen, workers)
	for i := int64(1); i <= workers; i++ {
		assert.True(t, seen[i], "sequence %d missing", i)
	}
}
