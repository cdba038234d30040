// 上限つきのgoroutineプール
//
// 全ワーカーが埋まっていてキューもいっぱいなら、Submitは待たずにErrPoolFullを返す。
package worker

import (
	"errors"
	"sync"
)

var ErrPoolFull = errors.New("worker: pool is full")

// Shutdownのあと
var ErrPoolClosed = errors.New("worker: pool is closed")

type Pool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	onPanic func(recovered any)
}

// sizeが0以下なら1
func NewPool(size int, onPanic func(recovered any)) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		//ワーカー数の2倍までは溜められる
		tasks:   make(chan func(), size*2),
		onPanic: onPanic,
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// 待たない
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// 受付を止め、実行中・キュー内のタスクが終わるまで待つ。何度呼んでもよい
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.tasks)
		p.mu.Unlock()

		p.wg.Wait()
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

// panicしてもワーカーは止めない
func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil && p.onPanic != nil {
			p.onPanic(r)
		}
	}()
	task()
}
