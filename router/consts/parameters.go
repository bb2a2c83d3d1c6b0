package consts

const (
	ParamReportID       = "reportID"
	ParamAppealID       = "appealID"
	ParamUserID         = "userID"
	ParamPostID         = "postID"
	ParamCommentID      = "commentID"
	ParamNotificationID = "notificationID"
)
