package validator

import (
	"errors"
	"regexp"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/utils/optional"
)

var (
	// UserNameRegex ユーザー名の正規表現
	UserNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,32}$`)
)

// UserNameRule ユーザー名バリデーションルール
var UserNameRule = []vd.Rule{
	vd.RuneLength(1, 32),
	vd.Match(UserNameRegex).Error("must contain [a-zA-Z0-9_-] only"),
}

// UserNameRuleRequired ユーザー名バリデーションルール with Required
var UserNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, UserNameRule...)

// ReportReasonRuleRequired 通報理由バリデーションルール with Required
var ReportReasonRuleRequired = []vd.Rule{
	vd.Required,
	vd.RuneLength(1, 500),
}

// ReportDetailsRule 通報詳細バリデーションルール
var ReportDetailsRule = []vd.Rule{
	vd.RuneLength(0, 2000),
}

// AppealTextRuleRequired 異議申し立て本文バリデーションルール with Required
var AppealTextRuleRequired = []vd.Rule{
	vd.Required,
	vd.RuneLength(1, 5000),
}

// PostContentRuleRequired 投稿本文バリデーションルール with Required
var PostContentRuleRequired = []vd.Rule{
	vd.Required,
	vd.RuneLength(1, 10000),
}

// NotNilUUID UUIDがuuid.Nilでないことを検証するルール
//
// 値がnilの場合は検証しない
var NotNilUUID = vd.By(func(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case uuid.UUID:
		if v == uuid.Nil {
			return errors.New("invalid uuid")
		}
	case optional.Of[uuid.UUID]:
		if v.Valid && v.V == uuid.Nil {
			return errors.New("invalid uuid")
		}
	case string:
		if uuid.FromStringOrNil(v) == uuid.Nil {
			return errors.New("invalid uuid")
		}
	case []byte:
		if uuid.FromBytesOrNil(v) == uuid.Nil {
			return errors.New("invalid uuid")
		}
	default:
		return errors.New("invalid type")
	}
	return nil
})
