package model

// トークンから取り出した呼び出し元
type Principal struct {
	UserID       string
	IsAdmin      bool
	TokenVersion int
}

// 管理者、または本人か
func (p Principal) IsSelfOrAdmin(userID string) bool {
	return p.IsAdmin || (p.UserID != "" && p.UserID == userID)
}
