package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPoolCounts(t *testing.T) {
	for _, workers := range []int{1, 4} {
		pool := Start(workers)
		var ran atomic.Int64
		for i := range 20 {
			pool.Do(func() error {
				ran.Add(1)
				if i%5 == 0 {
					return errors.New("boom")
				}
				return nil
			})
		}
		st := pool.Wait()
		if ran.Load() != 20 {
			t.Fatalf("workers=%d: ran %d jobs", workers, ran.Load())
		}
		if st.Done != 16 || st.Failed != 4 || st.Total() != 20 {
			t.Fatalf("workers=%d: stats %+v", workers, st)
		}
	}
}

func TestWaitTwice(t *testing.T) {
	pool := Start(2)
	pool.Do(func() error { return nil })
	pool.Wait()
	if st := pool.Wait(); st.Done != 1 {
		t.Fatalf("second Wait = %+v", st)
	}
}
