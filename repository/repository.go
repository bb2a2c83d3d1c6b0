package repository

// Repository データリポジトリ
type Repository interface {
	UserRepository
	ReportRepository
	AppealRepository
	ActionLogRepository
	NotificationRepository
	ContentRepository

	// Transaction fnを単一のトランザクション内で実行します
	//
	// fnには、トランザクション内で操作するRepositoryが渡されます。
	// fnがエラーを返した場合、全ての変更がロールバックされ、そのエラーを返します。
	// fn内で元のRepositoryを使用してはいけません。
	Transaction(fn func(tx Repository) error) error
}
