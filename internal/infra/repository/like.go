package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// 部分一致のパターン（%と_は文字として扱う）。ESCAPE '\' と組み合わせて使う
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
