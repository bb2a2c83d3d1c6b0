package gorm

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/utils/gormutil"
)

// CreateAppeal implements AppealRepository interface.
func (repo *Repository) CreateAppeal(args repository.CreateAppealArgs) (*model.Appeal, error) {
	if args.ReportID == uuid.Nil || args.UserID == uuid.Nil {
		return nil, repository.ErrNilID
	}

	appeal := &model.Appeal{
		ID:               uuid.Must(uuid.NewV7()),
		OriginalReportID: args.ReportID,
		UserID:           args.UserID,
		Text:             args.Text,
		ImageFileName:    args.ImageFileName,
		Status:           model.AppealStatusPending,
	}
	if err := repo.db.Omit("OriginalReport").Create(appeal).Error; err != nil {
		if gormutil.IsDuplicatedRecordErr(err) {
			return nil, repository.ErrAlreadyExists
		}
		return nil, err
	}
	return appeal, nil
}

// GetAppeal implements AppealRepository interface.
func (repo *Repository) GetAppeal(id uuid.UUID) (*model.Appeal, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var appeal model.Appeal
	if err := repo.db.Preload("OriginalReport").First(&appeal, &model.Appeal{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &appeal, nil
}

// GetAppealByReportID implements AppealRepository interface.
func (repo *Repository) GetAppealByReportID(reportID uuid.UUID) (*model.Appeal, error) {
	if reportID == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var appeal model.Appeal
	if err := repo.db.Preload("OriginalReport").Where("original_report_id = ?", reportID).First(&appeal).Error; err != nil {
		return nil, convertError(err)
	}
	return &appeal, nil
}

// GetAppeals implements AppealRepository interface.
func (repo *Repository) GetAppeals(query repository.AppealsQuery) ([]*model.Appeal, error) {
	appeals := make([]*model.Appeal, 0)
	tx := repo.db.Preload("OriginalReport").Scopes(gormutil.LimitAndOffset(query.Limit, query.Offset))
	if query.Status.Valid {
		tx = tx.Where("status = ?", query.Status.V)
	}
	return appeals, tx.Order("created_at ASC").Order("id ASC").Find(&appeals).Error
}

// CountAppeals implements AppealRepository interface.
func (repo *Repository) CountAppeals(status model.AppealStatus) (n int64, err error) {
	return n, repo.db.Model(&model.Appeal{}).Where("status = ?", status).Count(&n).Error
}

// UpdateAppealStatus implements AppealRepository interface.
func (repo *Repository) UpdateAppealStatus(id uuid.UUID, args repository.UpdateAppealStatusArgs) error {
	if id == uuid.Nil || args.ReviewerID == uuid.Nil {
		return repository.ErrNilID
	}
	result := repo.db.Model(&model.Appeal{}).
		Where("id = ? AND status = ?", id, args.From).
		Updates(map[string]interface{}{
			"status":      args.To,
			"reviewed_by": args.ReviewerID,
			"reviewed_at": args.ReviewedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrPreconditionFailed
	}
	return nil
}
