package gorm

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/utils/gormutil"
)

// CreateReport implements ReportRepository interface.
func (repo *Repository) CreateReport(args repository.CreateReportArgs) (*model.Report, error) {
	if args.ReporterID == uuid.Nil || args.ContentID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	if !args.ContentType.Valid() {
		return nil, repository.ArgError("args.ContentType", "invalid content type")
	}

	report := &model.Report{
		ID:          uuid.Must(uuid.NewV7()),
		ReporterID:  args.ReporterID,
		ContentType: args.ContentType,
		ContentID:   args.ContentID,
		Reason:      args.Reason,
		Details:     args.Details,
		Status:      model.ReportStatusPending,
	}
	if err := repo.db.Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// GetReport implements ReportRepository interface.
func (repo *Repository) GetReport(id uuid.UUID) (*model.Report, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var report model.Report
	if err := repo.db.First(&report, &model.Report{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &report, nil
}

// GetReports implements ReportRepository interface.
func (repo *Repository) GetReports(query repository.ReportsQuery) ([]*model.Report, error) {
	reports := make([]*model.Report, 0)
	tx := repo.db.Scopes(gormutil.LimitAndOffset(query.Limit, query.Offset))
	if query.Status.Valid {
		tx = tx.Where("status = ?", query.Status.V)
	}
	return reports, tx.Order("created_at ASC").Order("id ASC").Find(&reports).Error
}

// CountReports implements ReportRepository interface.
func (repo *Repository) CountReports(status model.ReportStatus) (n int64, err error) {
	return n, repo.db.Model(&model.Report{}).Where("status = ?", status).Count(&n).Error
}

// UpdateReportStatus implements ReportRepository interface.
func (repo *Repository) UpdateReportStatus(id uuid.UUID, args repository.UpdateReportStatusArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	changes := map[string]interface{}{
		"status": args.To,
	}
	if args.ReviewerID.Valid {
		changes["reviewed_by"] = args.ReviewerID
		changes["reviewed_at"] = args.ReviewedAt
	}
	result := repo.db.Model(&model.Report{}).
		Where("id = ? AND status = ?", id, args.From).
		Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrPreconditionFailed
	}
	return nil
}
