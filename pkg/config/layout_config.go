package config

// 窗口布局常量
// 所有坐标都是逻辑屏幕坐标，窗口缩放由 ebiten 处理

// Window Configuration (窗口配置)
const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 1280
	// WindowHeight 逻辑屏幕高度
	WindowHeight = 720
)

// Normal View Layout (A面布局)
const (
	// ResumePanelX 简历图左上角 X
	ResumePanelX = 80.0
	// ResumePanelY 简历图左上角 Y
	ResumePanelY = 60.0
	// ResumePanelWidth 简历图区域宽度，图片按比例缩放到此区域内
	ResumePanelWidth = 560.0
	// ResumePanelHeight 简历图区域高度
	ResumePanelHeight = 600.0

	// SwitchButtonCenterX 切换按钮（Logo）中心 X
	SwitchButtonCenterX = 960.0
	// SwitchButtonCenterY 切换按钮中心 Y
	SwitchButtonCenterY = 320.0
	// SwitchButtonSize 切换按钮边长
	SwitchButtonSize = 200.0
	// SloganOffsetY 标语相对按钮中心的 Y 偏移
	SloganOffsetY = 140.0
)

// Neon View Layout (B面布局)
const (
	// CardGridX 卡片网格左上角 X
	CardGridX = 80.0
	// CardGridY 卡片网格左上角 Y
	CardGridY = 90.0
	// CardGridColumns 普通卡片的列数（个人信息卡片占满一行）
	CardGridColumns = 3
	// CardGap 卡片间距
	CardGap = 20.0
	// CardWidth 普通卡片宽度：(1280 - 80*2 - 20*2) / 3
	CardWidth = (WindowWidth - CardGridX*2 - CardGap*(CardGridColumns-1)) / CardGridColumns
	// CardHeight 普通卡片高度
	CardHeight = 140.0
	// ProfileCardHeight 个人信息卡片高度
	ProfileCardHeight = 250.0
	// CardPadding 卡片内边距
	CardPadding = 16.0
	// CardBorderWidth 霓虹边框宽度
	CardBorderWidth = 2.0

	// BackButtonX 返回按钮左上角 X
	BackButtonX = 1140.0
	// BackButtonY 返回按钮左上角 Y
	BackButtonY = 24.0
	// BackButtonWidth 返回按钮宽度
	BackButtonWidth = 110.0
	// BackButtonHeight 返回按钮高度
	BackButtonHeight = 40.0
)

// Transition Overlay Layout (转场遮罩布局)
const (
	// OverlayLogoSize 转场 Logo 边长
	OverlayLogoSize = 240.0
	// OverlayKunaiSize 苦无边长
	OverlayKunaiSize = 120.0
	// KunaiStartOffset 苦无飞入前距屏幕中心的水平距离
	KunaiStartOffset = 560.0
	// KunaiDropDistance drop 模式下苦无下冲的距离
	KunaiDropDistance = 480.0
)
