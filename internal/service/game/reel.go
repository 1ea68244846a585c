package game

import (
	"context"
	"math/rand"
	"time"
)

const (
	// Барабаны
	reelCount = 5
	// Символы 0..9
	symbolCount = 10
)

// Reel - один барабан. Держит текущий отображаемый символ,
// который мутируется только во время активной прокрутки
type Reel struct {
	ticks    int
	interval time.Duration
	symbol   int
}

func NewReel(ticks int, interval time.Duration) *Reel {
	return &Reel{
		ticks:    ticks,
		interval: interval,
		symbol:   rand.Intn(symbolCount),
	}
}

// Symbol - текущий отображаемый символ барабана
func (r *Reel) Symbol() int {
	return r.symbol
}

// Settle - ленивая конечная последовательность прокрутки: ticks
// промежуточных символов с шагом interval, каждый равномерно из [0,9].
// Последний символ становится символом покоя барабана.
// Канал закрывается после последнего тика
func (r *Reel) Settle(ctx context.Context) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for i := 0; i < r.ticks; i++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			r.symbol = rand.Intn(symbolCount)

			select {
			case out <- r.symbol:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
