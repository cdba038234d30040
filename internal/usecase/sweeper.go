package usecase

// 削除後の孤児掃除（非同期、失敗してもリクエストは成功のまま）
type OrphanSweeper interface {
	SweepImages()
	SweepItems()
}
