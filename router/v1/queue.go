package v1

import (
	"errors"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/content"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

type reportQueueItemResponse struct {
	*reportResponse
	ReporterName     optional.Of[string]    `json:"reporterName"`
	ReportedUserID   optional.Of[uuid.UUID] `json:"reportedUserId"`
	ReportedUserName optional.Of[string]    `json:"reportedUserName"`
	ContentLink      string                 `json:"contentLink"`
}

type appealQueueItemResponse struct {
	*appealResponse
	AppellantName   optional.Of[string]    `json:"appellantName"`
	ModeratorUserID optional.Of[uuid.UUID] `json:"moderatorUserId"`
	ModeratorName   optional.Of[string]    `json:"moderatorName"`
	ContentLink     string                 `json:"contentLink"`
}

// queueResolver 未処理キューの各項目に関係ユーザーとコンテンツへのリンクを付与します
//
// 存在しないユーザー・コンテンツはnullになります
type queueResolver struct {
	repo  repository.Repository
	vis   content.Visibility
	names map[uuid.UUID]optional.Of[string]
}

func newQueueResolver(repo repository.Repository, vis content.Visibility) *queueResolver {
	return &queueResolver{repo: repo, vis: vis, names: map[uuid.UUID]optional.Of[string]{}}
}

func (q *queueResolver) userName(id uuid.UUID) (optional.Of[string], error) {
	if name, ok := q.names[id]; ok {
		return name, nil
	}
	var name optional.Of[string]
	u, err := q.repo.GetUser(id)
	switch {
	case err == nil:
		name = optional.From(u.Name)
	case !errors.Is(err, repository.ErrNotFound):
		return name, err
	}
	q.names[id] = name
	return name, nil
}

func (q *queueResolver) author(contentType model.ContentType, id uuid.UUID) (optional.Of[uuid.UUID], error) {
	authorID, err := q.vis.ResolveAuthor(q.repo, contentType, id)
	if err != nil {
		if errors.Is(err, content.ErrContentNotFound) {
			return optional.Of[uuid.UUID]{}, nil
		}
		return optional.Of[uuid.UUID]{}, err
	}
	return optional.From(authorID), nil
}

func (q *queueResolver) reports(rs []*model.Report) ([]*reportQueueItemResponse, error) {
	res := make([]*reportQueueItemResponse, len(rs))
	for i, r := range rs {
		item := &reportQueueItemResponse{
			reportResponse: formatReport(r),
			ContentLink:    notification.ContentPath(r.ContentType, r.ContentID),
		}
		var err error
		if item.ReporterName, err = q.userName(r.ReporterID); err != nil {
			return nil, err
		}
		if item.ReportedUserID, err = q.author(r.ContentType, r.ContentID); err != nil {
			return nil, err
		}
		if item.ReportedUserID.Valid {
			if item.ReportedUserName, err = q.userName(item.ReportedUserID.V); err != nil {
				return nil, err
			}
		}
		res[i] = item
	}
	return res, nil
}

func (q *queueResolver) appeals(as []*model.Appeal) ([]*appealQueueItemResponse, error) {
	res := make([]*appealQueueItemResponse, len(as))
	for i, a := range as {
		item := &appealQueueItemResponse{appealResponse: formatAppeal(a)}
		var err error
		if item.AppellantName, err = q.userName(a.UserID); err != nil {
			return nil, err
		}
		if r := a.OriginalReport; r != nil {
			item.ContentLink = notification.ContentPath(r.ContentType, r.ContentID)
			item.ModeratorUserID = r.ReviewedBy
			if r.ReviewedBy.Valid {
				if item.ModeratorName, err = q.userName(r.ReviewedBy.V); err != nil {
					return nil, err
				}
			}
		}
		res[i] = item
	}
	return res, nil
}
