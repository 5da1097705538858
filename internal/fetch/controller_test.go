package fetch

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

type record struct {
	ID int
}

func TestRefetch_Success(t *testing.T) {
	c := New(func(ctx context.Context) (record, error) {
		return record{ID: 1}, nil
	}, WithInitialLoad[record](false))

	c.Refetch(context.Background())

	st := c.State()
	if !st.Loaded || st.Data.ID != 1 {
		t.Fatalf("state after success: %+v", st)
	}
	if st.Loading {
		t.Fatal("loading must be false after completion")
	}
	if st.Err != "" {
		t.Fatalf("err = %q, want empty", st.Err)
	}
}

func TestRefetch_FailurePreservesData(t *testing.T) {
	calls := 0
	c := New(func(ctx context.Context) (record, error) {
		calls++
		if calls == 1 {
			return record{ID: 7}, nil
		}
		return record{}, errors.New("x")
	}, WithInitialLoad[record](false))

	c.Refetch(context.Background())
	c.Refetch(context.Background())

	st := c.State()
	if st.Err != "x" {
		t.Fatalf("err = %q, want x", st.Err)
	}
	if !st.Loaded || st.Data.ID != 7 {
		t.Fatalf("prior data not preserved: %+v", st)
	}
	if st.Loading {
		t.Fatal("loading must be false after failure")
	}
}

func TestRefetch_PanicNormalized(t *testing.T) {
	c := New(func(ctx context.Context) (record, error) {
		panic("boom")
	}, WithInitialLoad[record](false))

	c.Refetch(context.Background())

	if st := c.State(); st.Err != "Unknown error" {
		t.Fatalf("err = %q, want Unknown error", st.Err)
	}
}

func TestRefetch_ErrorPanicKeepsMessage(t *testing.T) {
	c := New(func(ctx context.Context) (record, error) {
		panic(errors.New("bad wire"))
	}, WithInitialLoad[record](false))

	c.Refetch(context.Background())

	if st := c.State(); st.Err != "bad wire" {
		t.Fatalf("err = %q, want bad wire", st.Err)
	}
}

func TestInit_InitialLoadFetchesExactlyOnce(t *testing.T) {
	var calls atomic.Int32
	c := New(func(ctx context.Context) (record, error) {
		calls.Add(1)
		return record{ID: 1}, nil
	})

	c.Init(context.Background())
	c.Init(context.Background())

	if n := calls.Load(); n != 1 {
		t.Fatalf("fetcher called %d times, want 1", n)
	}
}

func TestInit_InitialLoadDisabled(t *testing.T) {
	var calls atomic.Int32
	c := New(func(ctx context.Context) (record, error) {
		calls.Add(1)
		return record{}, nil
	}, WithInitialLoad[record](false))

	c.Init(context.Background())

	if n := calls.Load(); n != 0 {
		t.Fatalf("fetcher called %d times, want 0", n)
	}
}

func TestSetInitialLoad_LateEnableFetchesOnce(t *testing.T) {
	var calls atomic.Int32
	c := New(func(ctx context.Context) (record, error) {
		calls.Add(1)
		return record{}, nil
	}, WithInitialLoad[record](false))
	c.Init(context.Background())

	c.SetInitialLoad(context.Background(), true)
	c.SetInitialLoad(context.Background(), true)

	if n := calls.Load(); n != 1 {
		t.Fatalf("fetcher called %d times, want 1", n)
	}
}

func TestSetFetch_DoesNotRefetch(t *testing.T) {
	var calls atomic.Int32
	c := New(func(ctx context.Context) (record, error) {
		return record{ID: 1}, nil
	}, WithInitialLoad[record](false))

	c.SetFetch(func(ctx context.Context) (record, error) {
		calls.Add(1)
		return record{ID: 2}, nil
	})

	if n := calls.Load(); n != 0 {
		t.Fatal("swapping the fetcher must not fetch")
	}

	c.Refetch(context.Background())
	if st := c.State(); st.Data.ID != 2 {
		t.Fatalf("explicit refetch used old fetcher: %+v", st)
	}
}

func TestDispose_DiscardsLateCompletion(t *testing.T) {
	release := make(chan struct{})
	c := New(func(ctx context.Context) (record, error) {
		<-release
		return record{ID: 9}, nil
	}, WithInitialLoad[record](false))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Refetch(context.Background())
	}()

	c.Dispose()
	close(release)
	wg.Wait()

	if st := c.State(); st.Loaded {
		t.Fatalf("state written after dispose: %+v", st)
	}
}

func TestRefetch_LatestRequestWins(t *testing.T) {
	releaseFirst := make(chan struct{})
	var calls atomic.Int32
	c := New(func(ctx context.Context) (record, error) {
		if calls.Add(1) == 1 {
			<-releaseFirst
			return record{ID: 1}, nil
		}
		return record{ID: 2}, nil
	}, WithInitialLoad[record](false))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Refetch(context.Background())
	}()

	// Wait until the first fetch is actually in flight.
	for calls.Load() == 0 {
		runtime.Gosched()
	}

	// The second request supersedes the first.
	c.Refetch(context.Background())
	close(releaseFirst)
	wg.Wait()

	if st := c.State(); st.Data.ID != 2 {
		t.Fatalf("stale response won: %+v", st)
	}
}

func TestOnChange_NotifiesLoadingThenReady(t *testing.T) {
	var mu sync.Mutex
	var seen []State[record]
	c := New(func(ctx context.Context) (record, error) {
		return record{ID: 3}, nil
	},
		WithInitialLoad[record](false),
		WithOnChange(func(st State[record]) {
			mu.Lock()
			seen = append(seen, st)
			mu.Unlock()
		}),
	)

	c.Refetch(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 {
		t.Fatalf("notifications: %d, want 2", len(seen))
	}
	if !seen[0].Loading || seen[0].Err != "" {
		t.Fatalf("first notification: %+v", seen[0])
	}
	if seen[1].Loading || seen[1].Data.ID != 3 {
		t.Fatalf("second notification: %+v", seen[1])
	}
}

func TestRefetch_StaleWhileRevalidate(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	c := New(func(ctx context.Context) (record, error) {
		calls++
		if calls == 1 {
			return record{ID: 5}, nil
		}
		<-release
		return record{ID: 6}, nil
	}, WithInitialLoad[record](false))

	c.Refetch(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Refetch(context.Background())
	}()

	// While the second fetch is pending the first result stays visible.
	for {
		st := c.State()
		if st.Loading {
			if !st.Loaded || st.Data.ID != 5 {
				t.Errorf("stale data not retained: %+v", st)
			}
			break
		}
		runtime.Gosched()
	}

	close(release)
	wg.Wait()

	if st := c.State(); st.Data.ID != 6 {
		t.Fatalf("final state: %+v", st)
	}
}
