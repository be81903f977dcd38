package config

// 布局配置常量
// 本文件定义了游戏场景中的布局参数，包括网格系统、可见区域和工具栏位置

// Lawn Grid Configuration (草坪网格配置)
// 所有坐标使用"世界坐标系"（相对于背景图片左上角，Y轴向下）
// 世界坐标是固定的，不随摄像机移动而变化
const (
	// GridWorldStartX 是草坪网格在背景图片中的起始X坐标（世界坐标）
	// 计算方式：屏幕坐标 + 游戏摄像机位置(GameCameraX)
	GridWorldStartX = 252.0

	// GridWorldStartY 是草坪网格在背景图片中的起始Y坐标（世界坐标）
	GridWorldStartY = 72.0

	// GridColumns 是草坪的列数（横向格子数）
	GridColumns = 9

	// GridRows 是草坪的行数（纵向格子数）
	GridRows = 5

	// CellWidth 是每个格子的宽度（像素）
	CellWidth = 80.0

	// CellHeight 是每个格子的高度（像素）
	CellHeight = 100.0

	// GridWorldEndX 是草坪网格的结束X坐标（世界坐标）
	// 计算方式：起始X + 列数 * 格子宽度 = 252 + 9*80 = 972
	GridWorldEndX = GridWorldStartX + float64(GridColumns)*CellWidth

	// GridWorldEndY 是草坪网格的结束Y坐标（世界坐标）
	GridWorldEndY = GridWorldStartY + float64(GridRows)*CellHeight
)

// Camera / Visible field (摄像机与可见区域)
const (
	// GameCameraX 游戏进行中的摄像机X位置（世界坐标 = 屏幕坐标 + GameCameraX）
	GameCameraX = 220.0

	// ScreenWidth / ScreenHeight 逻辑屏幕尺寸
	ScreenWidth  = 800
	ScreenHeight = 600

	// VisibleMinX / VisibleMaxX 可见区域的水平范围（世界坐标）
	// 子弹越过 VisibleMaxX 即被删除
	VisibleMinX = GameCameraX
	VisibleMaxX = GameCameraX + float64(ScreenWidth)

	// VisibleMinY / VisibleMaxY 可见区域的垂直范围（世界坐标）
	// 阳光离开该范围即被删除
	VisibleMinY = 0.0
	VisibleMaxY = float64(ScreenHeight)
)

// Toolbar (工具栏，屏幕坐标)
const (
	// SunCounterX / SunCounterY 阳光计数文字位置
	SunCounterX = 12.0
	SunCounterY = 12.0

	// PlantCardStartX 第一张卡片的左上角X
	PlantCardStartX = 80.0
	// PlantCardStartY 卡片左上角Y
	PlantCardStartY = 6.0
	// PlantCardWidth / PlantCardHeight 卡片尺寸
	PlantCardWidth  = 50.0
	PlantCardHeight = 56.0
	// PlantCardSpacing 相邻卡片间距
	PlantCardSpacing = 6.0

	// ToolbarHeight 工具栏高度，必须不超过草坪第 0 行的上边界
	ToolbarHeight = PlantCardStartY*2 + PlantCardHeight
)

// GetGridWorldBounds 返回草坪网格的世界坐标边界
// 返回值：startX, startY, endX, endY
func GetGridWorldBounds() (float64, float64, float64, float64) {
	return GridWorldStartX, GridWorldStartY, GridWorldEndX, GridWorldEndY
}

// PlantCardScreenRect 返回第 index 张卡片的屏幕矩形
// 返回值：x, y, width, height
func PlantCardScreenRect(index int) (float64, float64, float64, float64) {
	x := PlantCardStartX + float64(index)*(PlantCardWidth+PlantCardSpacing)
	return x, PlantCardStartY, PlantCardWidth, PlantCardHeight
}
