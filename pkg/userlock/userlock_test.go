package userlock

import (
	"sync"
	"testing"
)

func TestLock_SerializesSameUser(t *testing.T) {
	l := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(1)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("expected %d increments, got %d", workers, counter)
	}
}

func TestLock_DifferentUsersIndependent(t *testing.T) {
	l := New()

	unlock1 := l.Lock(1)
	defer unlock1()

	// Блокировка другого игрока не должна зависнуть
	done := make(chan struct{})
	go func() {
		unlock2 := l.Lock(2)
		unlock2()
		close(done)
	}()

	<-done
}
