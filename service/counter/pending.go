package counter

import (
	"fmt"
	"sync"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/traPtitech/traQ-moderation/event"
	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
)

var (
	pendingReportsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "traq_moderation",
		Name:      "pending_reports",
	})
	pendingAppealsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "traq_moderation",
		Name:      "pending_appeals",
	})
)

// PendingCounter 未処理の通報・異議申し立て数カウンタ
//
// 件数はイベントを受け取る度とRefresh呼び出し時にDBから数え直す。
// 同時に発生した数え直しは1回にまとめられる
type PendingCounter struct {
	repo repository.Repository
	l    *zap.Logger
	sf   singleflight.Group

	mu      sync.RWMutex
	reports int64
	appeals int64
}

// NewPendingCounter 未処理件数カウンタを生成します
func NewPendingCounter(repo repository.Repository, hub *hub.Hub, logger *zap.Logger) (*PendingCounter, error) {
	c := &PendingCounter{
		repo: repo,
		l:    logger.Named("pending_counter"),
	}
	if err := c.refreshReports(); err != nil {
		return nil, fmt.Errorf("failed to load pending reports count: %w", err)
	}
	if err := c.refreshAppeals(); err != nil {
		return nil, fmt.Errorf("failed to load pending appeals count: %w", err)
	}
	go func() {
		for e := range hub.Subscribe(10, event.ReportFiled, event.ReportResolved, event.AppealFiled, event.AppealResolved).Receiver {
			var err error
			switch e.Topic() {
			case event.ReportFiled, event.ReportResolved:
				err = c.refreshReports()
			case event.AppealFiled, event.AppealResolved:
				err = c.refreshAppeals()
			}
			if err != nil {
				c.l.Warn("failed to refresh pending count", zap.String("topic", e.Topic()), zap.Error(err))
			}
		}
	}()
	return c, nil
}

// Reports 未処理の通報数を返します
func (c *PendingCounter) Reports() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reports
}

// Appeals 未処理の異議申し立て数を返します
func (c *PendingCounter) Appeals() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.appeals
}

// Refresh 未処理件数をDBから数え直します
func (c *PendingCounter) Refresh() error {
	var eg errgroup.Group
	eg.Go(c.refreshReports)
	eg.Go(c.refreshAppeals)
	return eg.Wait()
}

func (c *PendingCounter) refreshReports() error {
	_, err, _ := c.sf.Do("reports", func() (interface{}, error) {
		n, err := c.repo.CountReports(model.ReportStatusPending)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.reports = n
		c.mu.Unlock()
		pendingReportsGauge.Set(float64(n))
		return nil, nil
	})
	return err
}

func (c *PendingCounter) refreshAppeals() error {
	_, err, _ := c.sf.Do("appeals", func() (interface{}, error) {
		n, err := c.repo.CountAppeals(model.AppealStatusPending)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.appeals = n
		c.mu.Unlock()
		pendingAppealsGauge.Set(float64(n))
		return nil, nil
	})
	return err
}
