package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("C1:101")
			defer km.Unlock("C1:101")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	// Holding one key must not block another
	km.Lock("C1:101")
	done := make(chan struct{})
	go func() {
		km.Lock("C2:101")
		km.Unlock("C2:101")
		close(done)
	}()
	<-done
	km.Unlock("C1:101")
}
