package permission

const (
	// FileReport コンテンツ通報権限
	FileReport = Permission("file_report")
	// FileAppeal 異議申し立て権限
	FileAppeal = Permission("file_appeal")
	// GetMyNotifications 自分の通知取得権限
	GetMyNotifications = Permission("get_my_notifications")

	// GetPendingReports 未処理通報一覧取得権限
	GetPendingReports = Permission("get_pending_reports")
	// ResolveReport 通報処理権限
	ResolveReport = Permission("resolve_report")
	// HideContent コンテンツ非表示化権限
	HideContent = Permission("hide_content")
	// EditContent コンテンツ編集権限
	EditContent = Permission("edit_content")

	// GetPendingAppeals 未処理異議申し立て一覧取得権限
	GetPendingAppeals = Permission("get_pending_appeals")
	// ResolveAppeal 異議申し立て処理権限
	ResolveAppeal = Permission("resolve_appeal")
	// GetUsers ユーザー一覧取得権限
	GetUsers = Permission("get_users")
	// ChangeUserRole ユーザーロール変更権限
	ChangeUserRole = Permission("change_user_role")
	// SanctionUser ユーザー制裁権限
	SanctionUser = Permission("sanction_user")
	// GetActionLogs 監査ログ閲覧権限
	GetActionLogs = Permission("get_action_logs")
)

// List 全てのパーミッション
var List = []Permission{
	FileReport,
	FileAppeal,
	GetMyNotifications,
	GetPendingReports,
	ResolveReport,
	HideContent,
	EditContent,
	GetPendingAppeals,
	ResolveAppeal,
	GetUsers,
	ChangeUserRole,
	SanctionUser,
	GetActionLogs,
}
