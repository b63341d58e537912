package poller

import (
	"context"
	"sync"
	"time"
)

// Poller периодическая фоновая задача с явной остановкой
// Запускается один раз на старте сервиса и обязательно останавливается
// при завершении, чтобы не протекали таймеры
type Poller struct {
	interval time.Duration
	task     func(ctx context.Context)

	cancel   context.CancelFunc
	done     chan struct{}
	startOne sync.Once
	stopOne  sync.Once
}

// New создает poller с фиксированным интервалом
// task вызывается последовательно: следующий тик не начнется, пока не завершится предыдущий
func New(interval time.Duration, task func(ctx context.Context)) *Poller {
	return &Poller{
		interval: interval,
		task:     task,
		done:     make(chan struct{}),
	}
}

// Start запускает фоновый цикл. Повторные вызовы игнорируются
func (p *Poller) Start() {
	p.startOne.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		p.cancel = cancel

		go func() {
			defer close(p.done)

			ticker := time.NewTicker(p.interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					p.task(ctx)
				}
			}
		}()
	})
}

// Stop останавливает цикл и дожидается завершения текущей итерации
// Повторные вызовы безопасны
func (p *Poller) Stop() {
	p.stopOne.Do(func() {
		if p.cancel == nil {
			close(p.done)
			return
		}
		p.cancel()
		<-p.done
	})
}
