// Package migration 在启动时把持久化的设置从旧版本格式升级到当前格式
//
// 迁移按发布版本排列，每个版本由一个完成标记（hasMigrated:<version>）控制，
// 标记为 true 后该版本的步骤不再执行。迁移分两类：
//
// 1. 步骤组：组内每个步骤都会执行，失败的错误按顺序合并为 CombinedError，
// 全部成功才写入完成标记
// 2. 单步迁移：返回 Success、SuccessWithNotice 或 Failure，
// 成功（含带提示的成功）时写入完成标记，提示交给 notice.Presenter 展示
//
// 失败只记录日志，不会阻止后续迁移，也不会中断启动；下次启动时重试。
//
// 基本使用示例：
//
//	store, err := defaults.NewSQLiteStore(path, 256)
//	m, err := migration.New(store, hotkey.NewSettings(store),
//	    migration.WithPresenter(notice.NewWriterPresenter(os.Stdout)))
//	report := m.RunAll()
package migration
