package audit

import (
	"fmt"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/rbac/permission"
)

type trailImpl struct {
	repo repository.ActionLogRepository
	rbac rbac.RBAC
}

// NewTrail 監査ログを生成します
func NewTrail(repo repository.ActionLogRepository, rbac rbac.RBAC) Trail {
	return &trailImpl{repo: repo, rbac: rbac}
}

func (t *trailImpl) Record(repo repository.ActionLogRepository, entry Entry) error {
	_, err := repo.CreateActionLog(repository.CreateActionLogArgs{
		ActorID:         entry.ActorID,
		ActionType:      entry.Action,
		TargetUserID:    entry.TargetUserID,
		TargetContentID: entry.TargetContentID,
		Details:         entry.Details,
	})
	if err != nil {
		return fmt.Errorf("failed to record action log: %w", err)
	}
	return nil
}

func (t *trailImpl) GetRecent(actor model.Actor, limit int) ([]*model.ActionLog, error) {
	if !t.rbac.IsGranted(actor.Role, permission.GetActionLogs) {
		return nil, rbac.ErrPermissionDenied
	}
	if limit <= 0 || limit > MaxRecent {
		limit = MaxRecent
	}
	return t.repo.GetActionLogs(repository.ActionLogsQuery{Limit: limit})
}
