package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName 频道名首字母大写，注册、登录、资料修改共用
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
