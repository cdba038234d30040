package worker

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/metrics"
	repo "shop/internal/repository"
)

const defaultSweepTimeout = 30 * time.Second

// 孤児の掃除
// 商品削除のあと画像、注文削除のあと明細を非同期で消す。
// 失敗してもリクエストには影響させずログに残すだけ。
type Sweeper struct {
	pool    *Pool
	images  repo.ImageRepository
	items   repo.ItemRepository
	logger  *slog.Logger
	timeout time.Duration
}

func NewSweeper(workers int, images repo.ImageRepository, items repo.ItemRepository, logger *slog.Logger) *Sweeper {
	s := &Sweeper{
		images:  images,
		items:   items,
		logger:  logger,
		timeout: defaultSweepTimeout,
	}
	s.pool = NewPool(workers, func(r any) {
		logger.Error("sweeper task panicked", slog.Any("panic", r))
	})
	return s
}

// product_idがNULLの画像を消す
func (s *Sweeper) SweepImages() {
	s.submit("image", s.images.DeleteOrphans)
}

// 注文が無くなった明細を消す
func (s *Sweeper) SweepItems() {
	s.submit("item", s.items.DeleteOrphans)
}

func (s *Sweeper) submit(kind string, sweep func(ctx context.Context) (int64, error)) {
	err := s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		n, err := sweep(ctx)
		if err != nil {
			metrics.SweepRuns.WithLabelValues(kind, "failed").Inc()
			s.logger.Error("orphan sweep failed", slog.String("kind", kind), slog.Any("error", err))
			return
		}
		metrics.SweepRuns.WithLabelValues(kind, "success").Inc()
		metrics.OrphansSwept.WithLabelValues(kind).Add(float64(n))
		s.logger.Info("orphan sweep done", slog.String("kind", kind), slog.Int64("deleted", n))
	})
	if err != nil {
		//次の削除でまた掃除されるので捨てる
		metrics.SweepRuns.WithLabelValues(kind, "dropped").Inc()
		s.logger.Warn("orphan sweep dropped", slog.String("kind", kind), slog.Any("error", err))
	}
}

// 溜まっている掃除を終わらせて止める
func (s *Sweeper) Shutdown() {
	s.pool.Shutdown()
}
