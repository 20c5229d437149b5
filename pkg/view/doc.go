// Package view 保存渲染层需要的视觉状态
//
// ViewState 实现 transition.ViewPresenter：转场时间轴只写入状态，
// 窗口（ebiten）和终端（bubbletea）渲染器每帧读取状态并自行绘制。
// 透明度变化按调用时给出的过渡时长做补间，由 Update(dt) 推进。
package view
