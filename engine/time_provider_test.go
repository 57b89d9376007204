package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	<-provider.After(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("After returned early: %v elapsed, want at least 10ms", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	tp := NewMockTimeProvider(epoch)

	tp.Advance(time.Second)
	if got := tp.Now(); !got.Equal(epoch.Add(time.Second)) {
		t.Errorf("Now after Advance = %v", got)
	}

	select {
	case fired := <-tp.After(5 * time.Millisecond):
		if !fired.Equal(epoch.Add(time.Second + 5*time.Millisecond)) {
			t.Errorf("After fired at %v", fired)
		}
	default:
		t.Fatal("After channel not ready")
	}

	tp.SetTime(epoch)
	if !tp.Now().Equal(epoch) {
		t.Errorf("SetTime: Now = %v", tp.Now())
	}
	if w := tp.Waits(); len(w) != 1 || w[0] != 5*time.Millisecond {
		t.Errorf("Waits = %v", w)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	tp := NewMockTimeProvider(epoch)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tp.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				<-tp.After(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	// 5 * 50 * 1ms
	if got := tp.Now(); !got.Equal(epoch.Add(250 * time.Millisecond)) {
		t.Errorf("Now = %v after concurrent waits, want %v", got, epoch.Add(250*time.Millisecond))
	}
	if n := len(tp.Waits()); n != 250 {
		t.Errorf("recorded %d waits, want 250", n)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
