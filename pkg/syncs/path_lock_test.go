package syncs_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/propedit/pkg/syncs"
)

func TestPathLock(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		newLock func() *syncs.PathLock
	}{
		"with constructor": {
			newLock: syncs.NewPathLock,
		},
		"zero value": {
			newLock: func() *syncs.PathLock { return &syncs.PathLock{} },
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("different files do not block each other", func(t *testing.T) {
				t.Parallel()

				pl := tc.newLock()

				pl.Lock("a.properties")

				done := make(chan struct{})
				go func() {
					pl.Lock("b.properties")
					close(done)
				}()

				<-done

				pl.Unlock("a.properties")
				pl.Unlock("b.properties")
			})

			t.Run("equivalent paths share a lock", func(t *testing.T) {
				t.Parallel()

				pl := tc.newLock()

				pl.Lock("conf/a.properties")

				acquired := make(chan struct{})
				go func() {
					pl.Lock("./conf/../conf/a.properties")
					close(acquired)
				}()

				select {
				case <-acquired:
					t.Fatal("equivalent path acquired a held lock")
				default:
				}

				pl.Unlock("conf/a.properties")
				<-acquired
				pl.Unlock("conf/a.properties")
			})

			t.Run("same file serializes access", func(t *testing.T) {
				t.Parallel()

				pl := tc.newLock()

				counter := 0

				const n = 100

				var wg sync.WaitGroup
				wg.Add(n)

				for range n {
					go func() {
						defer wg.Done()

						pl.Lock("app.properties")
						defer pl.Unlock("app.properties")

						counter++
					}()
				}

				wg.Wait()

				assert.Equal(t, n, counter)
			})
		})
	}
}

func TestPathLock_ImplementsLocker(t *testing.T) {
	t.Parallel()

	var (
		_ syncs.Locker = (*syncs.PathLock)(nil)
		_ syncs.Locker = &syncs.PathLock{}
	)
}
