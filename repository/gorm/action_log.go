package gorm

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
)

// CreateActionLog implements ActionLogRepository interface.
func (repo *Repository) CreateActionLog(args repository.CreateActionLogArgs) (*model.ActionLog, error) {
	if args.ActorID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	log := &model.ActionLog{
		ID:              uuid.Must(uuid.NewV7()),
		Timestamp:       time.Now(),
		ActorID:         args.ActorID,
		ActionType:      args.ActionType,
		TargetUserID:    args.TargetUserID,
		TargetContentID: args.TargetContentID,
		Details:         args.Details,
	}
	if err := repo.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// GetActionLogs implements ActionLogRepository interface.
func (repo *Repository) GetActionLogs(query repository.ActionLogsQuery) ([]*model.ActionLog, error) {
	logs := make([]*model.ActionLog, 0)
	tx := repo.db
	if query.ActorID.Valid {
		tx = tx.Where("actor_id = ?", query.ActorID.V)
	}
	if query.TargetUserID.Valid {
		tx = tx.Where("target_user_id = ?", query.TargetUserID.V)
	}
	if query.ActionType.Valid {
		tx = tx.Where("action_type = ?", query.ActionType.V)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	return logs, tx.Order("timestamp DESC").Order("id DESC").Find(&logs).Error
}
