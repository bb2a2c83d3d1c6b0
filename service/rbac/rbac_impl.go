package rbac

import (
	"github.com/traPtitech/traQ-moderation/service/rbac/permission"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
)

// requiredLevels 各権限に必要なロールレベル
var requiredLevels = map[permission.Permission]int{
	permission.FileReport:         role.Level(role.User),
	permission.FileAppeal:         role.Level(role.User),
	permission.GetMyNotifications: role.Level(role.User),

	permission.GetPendingReports: role.Level(role.Moderator),
	permission.ResolveReport:     role.Level(role.Moderator),
	permission.HideContent:       role.Level(role.Moderator),
	permission.EditContent:       role.Level(role.Moderator),

	permission.GetPendingAppeals: role.Level(role.Coordinator),
	permission.ResolveAppeal:     role.Level(role.Coordinator),
	permission.GetUsers:          role.Level(role.Coordinator),
	permission.ChangeUserRole:    role.Level(role.Coordinator),
	permission.SanctionUser:      role.Level(role.Coordinator),
	permission.GetActionLogs:     role.Level(role.Coordinator),
}

// assignable 各ロールが割り当てられるロール
var assignable = map[string][]string{
	role.Admin:       role.List(),
	role.Coordinator: {role.User, role.Moderator},
}

type rbacImpl struct{}

// New RBACを生成します
func New() RBAC {
	return &rbacImpl{}
}

func (*rbacImpl) Level(r string) int {
	return role.Level(r)
}

func (*rbacImpl) Authorize(r string, requiredLevel int) bool {
	l := role.Level(r)
	return l != role.Unknown && l >= requiredLevel
}

func (rb *rbacImpl) IsGranted(r string, perm permission.Permission) bool {
	required, ok := requiredLevels[perm]
	if !ok {
		return false
	}
	return rb.Authorize(r, required)
}

func (rb *rbacImpl) GetGrantedPermissions(r string) []permission.Permission {
	perms := permission.Permissions{}
	for _, p := range permission.List {
		if rb.IsGranted(r, p) {
			perms.Add(p)
		}
	}
	return perms.Array()
}

func (*rbacImpl) CanModify(actorRole, targetRole string) bool {
	switch actorRole {
	case role.Admin:
		return true
	case role.Coordinator:
		return role.Level(targetRole) < role.Level(role.Coordinator)
	default:
		return false
	}
}

func (rb *rbacImpl) AssignableRoles(actorRole, targetRole string) ([]string, error) {
	// 対象の現在のロールによる制限を割り当て可能ロールより先に判定する
	if !rb.CanModify(actorRole, targetRole) {
		return nil, ErrPermissionDenied
	}
	roles, ok := assignable[actorRole]
	if !ok {
		return nil, ErrPermissionDenied
	}
	return append([]string{}, roles...), nil
}
