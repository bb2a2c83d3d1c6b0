package counter

import (
	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/traPtitech/traQ-moderation/event"
	"github.com/traPtitech/traQ-moderation/model"
)

var (
	reportsFiledCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "traq_moderation",
		Name:      "reports_filed_total",
	})
	appealsFiledCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "traq_moderation",
		Name:      "appeals_filed_total",
	})
	decisionsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traq_moderation",
		Name:      "decisions_total",
	}, []string{"kind", "decision"})
	sanctionsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traq_moderation",
		Name:      "sanctions_total",
	}, []string{"action"})
	roleChangesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traq_moderation",
		Name:      "role_changes_total",
	}, []string{"role"})
	contentActionsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traq_moderation",
		Name:      "content_actions_total",
	}, []string{"action"})
)

// DecisionCounter モデレーション操作の件数をPrometheusに記録します
type DecisionCounter struct{}

// NewDecisionCounter モデレーション操作カウンタを生成します
func NewDecisionCounter(hub *hub.Hub) *DecisionCounter {
	go func() {
		for e := range hub.Subscribe(100,
			event.ReportFiled,
			event.ReportResolved,
			event.AppealFiled,
			event.AppealResolved,
			event.UserSanctioned,
			event.UserRoleChanged,
			event.ContentModerated,
		).Receiver {
			record(e)
		}
	}()
	return &DecisionCounter{}
}

func record(e hub.Message) {
	switch e.Topic() {
	case event.ReportFiled:
		reportsFiledCounter.Inc()
	case event.AppealFiled:
		appealsFiledCounter.Inc()
	case event.ReportResolved:
		decisionsCounter.WithLabelValues("report", stringField(e, "decision")).Inc()
	case event.AppealResolved:
		decisionsCounter.WithLabelValues("appeal", stringField(e, "decision")).Inc()
	case event.UserSanctioned:
		sanctionsCounter.WithLabelValues(stringField(e, "action")).Inc()
	case event.UserRoleChanged:
		roleChangesCounter.WithLabelValues(stringField(e, "new_role")).Inc()
	case event.ContentModerated:
		if a, ok := e.Fields["action"].(model.ActionType); ok {
			contentActionsCounter.WithLabelValues(string(a)).Inc()
		}
	}
}

func stringField(e hub.Message, key string) string {
	s, _ := e.Fields[key].(string)
	return s
}
