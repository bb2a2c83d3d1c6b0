package reason

import (
	"errors"
	"strings"
)

// ErrInvalidReason 理由キーが操作に対して定義されていない、もしくはカスタム理由の本文が空です
var ErrInvalidReason = errors.New("invalid reason")

// Custom 任意の理由文を指定するためのキー
const Custom = "custom"

// Kind 理由を指定する操作の種類
type Kind int

const (
	// KindUphold 通報の承認(措置実施)
	KindUphold Kind = iota
	// KindDismiss 通報の却下
	KindDismiss
	// KindApprove 異議申し立ての承認
	KindApprove
	// KindDeny 異議申し立ての却下
	KindDeny
)

// Reason 定義済みの理由、もしくはカスタム理由
//
// Textは常に利用者に提示する文面
type Reason struct {
	Key  string
	Text string
}

// IsCustom カスタム理由かどうか
func (r Reason) IsCustom() bool {
	return r.Key == Custom
}

var tables = map[Kind]map[string]string{
	KindUphold: {
		"spam":                  "We have reviewed your content and determined it violates our rules on spam and unwanted self-promotion.",
		"hate_speech":           "This content has been removed because it violates our policies on hate speech and language that incites violence.",
		"harassment":            "We have determined that this content constitutes harassment or bullying towards another member of the community, which is not allowed.",
		"inappropriate_content": "This content has been removed for being explicit or inappropriate for our community.",
	},
	KindDismiss: {
		"not_a_violation":      "Thank you for your report. After reviewing it, we have determined that the content does not violate our community guidelines.",
		"insufficient_context": "Thank you for your report. We could not reach a decision with the information provided, as the content requires more context.",
		"user_blocked":         "Thank you for your report. In addition to reporting, we recommend using the block feature if you do not wish to see this user's content.",
	},
	KindApprove: {
		"re-evaluation_ok": "After a second review by the administration team, we have determined that your appeal is valid and the original decision has been reverted. We apologize for the inconvenience.",
		"new_context_ok":   "Thank you for providing new context in your appeal. We have re-evaluated the case and agree with you. The sanction has been withdrawn.",
	},
	KindDeny: {
		"decision_upheld":    "After a thorough review of your appeal, the administration team has decided to uphold the moderator's original decision. This decision is final.",
		"repeated_violation": "We have reviewed your appeal. The original decision stands, as the content clearly violates the community guidelines. Please review our policies to avoid future sanctions.",
	},
}

// Parse 操作の種類に対する理由キーを解決します
//
// keyがCustomの場合はcustomを理由文とします。
// 未定義のキー、または空のカスタム理由の場合はErrInvalidReasonを返します。
func Parse(kind Kind, key, custom string) (Reason, error) {
	table, ok := tables[kind]
	if !ok {
		return Reason{}, ErrInvalidReason
	}
	if key == Custom {
		text := strings.TrimSpace(custom)
		if len(text) == 0 {
			return Reason{}, ErrInvalidReason
		}
		return Reason{Key: Custom, Text: text}, nil
	}
	text, ok := table[key]
	if !ok {
		return Reason{}, ErrInvalidReason
	}
	return Reason{Key: key, Text: text}, nil
}

// Keys 操作の種類に対して定義済みの理由キーを返します。Customは含みません
func Keys(kind Kind) []string {
	table := tables[kind]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}
