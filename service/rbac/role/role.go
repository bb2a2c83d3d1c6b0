package role

// ロール名
//
// 階層は User < Moderator < Coordinator < Admin の全順序
const (
	User        = "user"
	Moderator   = "moderator"
	Coordinator = "coordinator"
	Admin       = "admin"
)

// Unknown 不明なロールのレベル
const Unknown = -1

var levels = map[string]int{
	User:        0,
	Moderator:   1,
	Coordinator: 2,
	Admin:       3,
}

// List 全てのロール(低い順)
func List() []string {
	return []string{User, Moderator, Coordinator, Admin}
}

// Level ロールのレベルを返します。不明なロールの場合はUnknownを返します
func Level(role string) int {
	l, ok := levels[role]
	if !ok {
		return Unknown
	}
	return l
}

// Valid 有効なロール名かどうか
func Valid(role string) bool {
	_, ok := levels[role]
	return ok
}
