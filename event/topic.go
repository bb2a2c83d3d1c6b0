package event

const (
	// ReportFiled コンテンツが通報された
	// 	Fields:
	// 		report_id: uuid.UUID
	// 		report: *model.Report
	ReportFiled = "report.filed"
	// ReportResolved 通報が処理された
	// 	Fields:
	// 		report_id: uuid.UUID
	// 		report: *model.Report
	// 		reviewer_id: uuid.UUID
	// 		decision: string
	// 		content_found: bool
	ReportResolved = "report.resolved"

	// AppealFiled 異議申し立てが行われた
	// 	Fields:
	// 		appeal_id: uuid.UUID
	// 		appeal: *model.Appeal
	AppealFiled = "appeal.filed"
	// AppealResolved 異議申し立てが処理された
	// 	Fields:
	// 		appeal_id: uuid.UUID
	// 		appeal: *model.Appeal
	// 		reviewer_id: uuid.UUID
	// 		decision: string
	AppealResolved = "appeal.resolved"

	// UserSanctioned ユーザーの制裁状態が変更された
	// 	Fields:
	// 		user_id: uuid.UUID
	// 		actor_id: uuid.UUID
	// 		action: string
	UserSanctioned = "user.sanctioned"
	// UserRoleChanged ユーザーのロールが変更された
	// 	Fields:
	// 		user_id: uuid.UUID
	// 		actor_id: uuid.UUID
	// 		old_role: string
	// 		new_role: string
	UserRoleChanged = "user.role_changed"

	// ContentModerated モデレーターがコンテンツを直接操作した
	// 	Fields:
	// 		content_id: uuid.UUID
	// 		content_type: model.ContentType
	// 		actor_id: uuid.UUID
	// 		action: model.ActionType
	ContentModerated = "content.moderated"
)
