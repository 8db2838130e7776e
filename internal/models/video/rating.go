package video

import "strings"

// Rating 是视频分级的封闭枚举。
type Rating string

// 分级常量定义
const (
	RatingER Rating = "ER"
	RatingL  Rating = "L"
	Rating10 Rating = "10"
	Rating12 Rating = "12"
	Rating14 Rating = "14"
	Rating16 Rating = "16"
	Rating18 Rating = "18"
)

var ratings = []Rating{RatingER, RatingL, Rating10, Rating12, Rating14, Rating16, Rating18}

// ParseRating 大小写不敏感地解析分级；缺失或无法识别时返回 ("", false)。
func ParseRating(raw string) (Rating, bool) {
	candidate := Rating(strings.ToUpper(strings.TrimSpace(raw)))
	for _, r := range ratings {
		if r == candidate {
			return r, true
		}
	}
	return "", false
}

// IsValid 判断是否为合法分级。
func (r Rating) IsValid() bool {
	for _, v := range ratings {
		if v == r {
			return true
		}
	}
	return false
}

func (r Rating) String() string {
	return string(r)
}
