package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/event"
	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/rbac/permission"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// ErrEmptyContent 編集後の本文が空です
var ErrEmptyContent = errors.New("content must not be empty")

// Moderator モデレーターによるコンテンツの直接操作
type Moderator interface {
	// HidePost 投稿を非表示にします
	HidePost(actor model.Actor, postID uuid.UUID) error
	// HideComment コメントを非表示にします
	HideComment(actor model.Actor, commentID uuid.UUID) error
	// EditPost 投稿の本文を置き換えます
	EditPost(actor model.Actor, postID uuid.UUID, content string) error
}

type moderator struct {
	repo  repository.Repository
	rbac  rbac.RBAC
	trail audit.Trail
	vis   Visibility
	hub   *hub.Hub
	l     *zap.Logger
}

// NewModerator Moderatorを生成します
func NewModerator(repo repository.Repository, rbac rbac.RBAC, trail audit.Trail, vis Visibility, hub *hub.Hub, logger *zap.Logger) Moderator {
	return &moderator{
		repo:  repo,
		rbac:  rbac,
		trail: trail,
		vis:   vis,
		hub:   hub,
		l:     logger.Named("content_moderator"),
	}
}

func (m *moderator) HidePost(actor model.Actor, postID uuid.UUID) error {
	return m.hide(actor, model.ContentTypePost, postID, model.ActionPostHideByMod)
}

func (m *moderator) HideComment(actor model.Actor, commentID uuid.UUID) error {
	return m.hide(actor, model.ContentTypeComment, commentID, model.ActionCommentHideByMod)
}

func (m *moderator) hide(actor model.Actor, contentType model.ContentType, id uuid.UUID, action model.ActionType) error {
	if !m.rbac.IsGranted(actor.Role, permission.HideContent) {
		return rbac.ErrPermissionDenied
	}

	err := m.repo.Transaction(func(tx repository.Repository) error {
		authorID, err := m.vis.ResolveAuthor(tx, contentType, id)
		if err != nil {
			return err
		}
		snippet, err := m.vis.Snippet(tx, contentType, id)
		if err != nil {
			return err
		}
		if err := m.vis.SetVisible(tx, contentType, id, false); err != nil {
			return err
		}
		return m.trail.Record(tx, audit.Entry{
			ActorID:         actor.ID,
			Action:          action,
			TargetUserID:    optional.From(authorID),
			TargetContentID: optional.From(id),
			Details:         fmt.Sprintf("Hid %s. Content: '%s'", strings.ReplaceAll(string(contentType), "_", " "), snippet),
		})
	})
	if err != nil {
		return err
	}

	m.l.Info("content hidden by moderator",
		zap.Stringer("actorId", actor.ID),
		zap.String("contentType", string(contentType)),
		zap.Stringer("contentId", id))
	m.hub.Publish(hub.Message{
		Name: event.ContentModerated,
		Fields: hub.Fields{
			"content_id":   id,
			"content_type": contentType,
			"actor_id":     actor.ID,
			"action":       action,
		},
	})
	return nil
}

func (m *moderator) EditPost(actor model.Actor, postID uuid.UUID, content string) error {
	if !m.rbac.IsGranted(actor.Role, permission.EditContent) {
		return rbac.ErrPermissionDenied
	}
	content = strings.TrimSpace(content)
	if len(content) == 0 {
		return ErrEmptyContent
	}

	err := m.repo.Transaction(func(tx repository.Repository) error {
		post, err := tx.GetPost(postID)
		if err != nil {
			return convertError(err)
		}
		if err := tx.UpdatePostContent(post.ID, content); err != nil {
			return err
		}
		return m.trail.Record(tx, audit.Entry{
			ActorID:         actor.ID,
			Action:          model.ActionPostEditByMod,
			TargetUserID:    optional.From(post.UserID),
			TargetContentID: optional.From(post.ID),
			Details:         fmt.Sprintf("Edited post. Previous content: '%s'", Excerpt(post.Content, SnippetLength)),
		})
	})
	if err != nil {
		return err
	}

	m.l.Info("post edited by moderator", zap.Stringer("actorId", actor.ID), zap.Stringer("postId", postID))
	m.hub.Publish(hub.Message{
		Name: event.ContentModerated,
		Fields: hub.Fields{
			"content_id":   postID,
			"content_type": model.ContentTypePost,
			"actor_id":     actor.ID,
			"action":       model.ActionPostEditByMod,
		},
	})
	return nil
}
