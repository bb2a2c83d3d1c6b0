package sanction

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration 制裁期間の指定が不正です
var ErrInvalidDuration = errors.New("invalid sanction duration")

const (
	// DurationLift 全ての制裁を解除
	DurationLift = "lift_sanctions"
	// DurationPermanentBan 永久BAN
	DurationPermanentBan = "permanent_ban"
)

// Kind 制裁の種類
type Kind string

const (
	// KindLift 全ての制裁の解除
	KindLift Kind = "lift"
	// KindPermanentBan 永久BAN
	KindPermanentBan Kind = "permanent_ban"
	// KindMute 期限付きミュート
	KindMute Kind = "mute"
	// KindBan 期限付きBAN
	KindBan Kind = "ban"
)

// MaxDays 期限付き制裁の最大日数
const MaxDays = 36500

// Duration 解析済みの制裁期間
type Duration struct {
	Kind Kind
	// Days KindMute, KindBanの日数
	Days int
}

// Until nowからの制裁期限を返します
func (d Duration) Until(now time.Time) time.Time {
	return now.UTC().AddDate(0, 0, d.Days)
}

// ParseDuration 制裁期間の文字列を解析します
//
// "lift_sanctions", "permanent_ban", "{N}_mute", "{N}_ban"を受け付けます。
// "{N}_"に続く名前がmute以外の場合は全てBANとして扱います。Nは1以上MaxDays以下です。
func ParseDuration(s string) (Duration, error) {
	switch s {
	case DurationLift:
		return Duration{Kind: KindLift}, nil
	case DurationPermanentBan:
		return Duration{Kind: KindPermanentBan}, nil
	}

	n, name, ok := strings.Cut(s, "_")
	if !ok || len(name) == 0 {
		return Duration{}, ErrInvalidDuration
	}
	days, err := strconv.Atoi(n)
	if err != nil || days <= 0 || days > MaxDays {
		return Duration{}, ErrInvalidDuration
	}
	if name == "mute" {
		return Duration{Kind: KindMute, Days: days}, nil
	}
	return Duration{Kind: KindBan, Days: days}, nil
}
