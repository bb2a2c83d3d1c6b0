package rbac

import (
	"errors"

	"github.com/traPtitech/traQ-moderation/service/rbac/permission"
)

// ErrPermissionDenied 権限が不足している、もしくは階層上操作できない対象です
var ErrPermissionDenied = errors.New("permission denied")

// RBAC Role-based Access Controllerインターフェース
//
// 全ての権限判定はこのインターフェースを経由する。状態を持たない純粋関数群
type RBAC interface {
	// Level 指定したロールのレベルを返します
	Level(role string) int
	// Authorize 指定したロールが要求レベル以上かどうか
	Authorize(role string, requiredLevel int) bool
	// IsGranted 指定したロールで指定した権限が許可されているかどうか
	IsGranted(role string, perm permission.Permission) bool
	// GetGrantedPermissions 指定したロールに与えられている全ての権限を取得します
	GetGrantedPermissions(role string) []permission.Permission
	// CanModify actorRoleのユーザーが現在targetRoleのユーザーのロールや制裁状態を変更できるかどうか
	CanModify(actorRole, targetRole string) bool
	// AssignableRoles actorRoleのユーザーが現在targetRoleのユーザーに割り当て可能なロールを返します
	//
	// 対象を変更できない場合、ErrPermissionDeniedを返します。
	AssignableRoles(actorRole, targetRole string) ([]string, error)
}
