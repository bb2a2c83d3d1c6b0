package consts

const (
	KeyUserID    = "userID"
	KeyUser      = "user"
	KeySanction  = "sanction"
	KeyParamUser = "paramUser"
)
