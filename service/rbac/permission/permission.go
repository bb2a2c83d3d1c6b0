package permission

// Permission パーミッション
type Permission string

// Name パーミッション名
func (p Permission) Name() string {
	return string(p)
}

// Permissions パーミッションセット
type Permissions map[Permission]struct{}

// Add セットに権限を追加します
func (set Permissions) Add(p Permission) {
	set[p] = struct{}{}
}

// Contains セットに指定した権限が含まれているかどうか
func (set Permissions) Contains(p Permission) bool {
	_, ok := set[p]
	return ok
}

// Array セットの権限の配列を返します
func (set Permissions) Array() []Permission {
	result := make([]Permission, 0, len(set))
	for k := range set {
		result = append(result, k)
	}
	return result
}
