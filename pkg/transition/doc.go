// Package transition 实现 A面（normal）与 B面（neon）之间的转场时间轴状态机。
//
// 组成（由底向上）：
//   - ResolveDurations: 动画模式 → 时长表，纯函数
//   - BuildForwardTimeline / BuildReverseTimeline: 时长表 → 有序步骤列表
//   - Scheduler: 按单调时钟依次触发步骤，单线程，不支持取消
//   - ModeController: 持有当前模式与转场锁，RequestToggle 是唯一入口
//
// 所有视觉副作用都通过 ViewPresenter 接口发出，本包不依赖任何渲染库。
// 时间由宿主循环推进（ebiten 的 Update 或 bubbletea 的 tick 消息），
// 因此 Scheduler 与 ModeController 都不是并发安全的，必须在同一个 goroutine 中调用。
//
// 前进转场在 reveal 步骤（遮罩开始淡出之前）就释放转场锁并提交模式，
// 遮罩淡出与清理仍在之后继续执行；此时再次切换会与尚未完成的清理交错。
package transition
