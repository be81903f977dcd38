package utils

import (
	"math"

	"github.com/decker502/pvz-core/pkg/config"
)

// GridPos 草坪网格坐标（浮点）
// 整数部分对应格子索引，X 为列，Y 为行；中间值表示处于两个格子之间
// 与世界坐标之间是固定的仿射变换：world = origin + cell/2 + cell*(x, y)
type GridPos struct {
	X float64
	Y float64
}

// Tile 整数格子坐标
type Tile struct {
	Col int
	Row int
}

// NewGridPos 由格子索引构造网格坐标
func NewGridPos(col, row int) GridPos {
	return GridPos{X: float64(col), Y: float64(row)}
}

// ToWorld 将网格坐标转换为世界坐标（格子中心）
func (g GridPos) ToWorld() (worldX, worldY float64) {
	worldX = config.GridWorldStartX + config.CellWidth/2 + config.CellWidth*g.X
	worldY = config.GridWorldStartY + config.CellHeight/2 + config.CellHeight*g.Y
	return worldX, worldY
}

// GridPosFromWorld 将世界坐标转换为网格坐标（ToWorld 的逆变换，不取整）
func GridPosFromWorld(worldX, worldY float64) GridPos {
	return GridPos{
		X: (worldX - config.GridWorldStartX - config.CellWidth/2) / config.CellWidth,
		Y: (worldY - config.GridWorldStartY - config.CellHeight/2) / config.CellHeight,
	}
}

// Round 四舍五入到最近的格子
func (g GridPos) Round() GridPos {
	return GridPos{X: math.Round(g.X), Y: math.Round(g.Y)}
}

// Tile 四舍五入后返回整数格子坐标
// 越界的结果是合法的（表示草坪外的位置），由调用方决定是否拒绝
func (g GridPos) Tile() Tile {
	r := g.Round()
	return Tile{Col: int(r.X), Row: int(r.Y)}
}

// ToGridPos 整数格子转回网格坐标
func (t Tile) ToGridPos() GridPos {
	return NewGridPos(t.Col, t.Row)
}

// ToWorld 返回格子中心的世界坐标
func (t Tile) ToWorld() (worldX, worldY float64) {
	return t.ToGridPos().ToWorld()
}

// InBounds 检查格子是否在草坪范围内
func (t Tile) InBounds() bool {
	return t.Col >= 0 && t.Col < config.GridColumns && t.Row >= 0 && t.Row < config.GridRows
}

// WorldToTile 世界坐标直接转换为整数格子坐标
func WorldToTile(worldX, worldY float64) Tile {
	return GridPosFromWorld(worldX, worldY).Tile()
}

// IsWorldPosOnGrid 检查世界坐标是否落在草坪某个格子内
func IsWorldPosOnGrid(worldX, worldY float64) bool {
	return WorldToTile(worldX, worldY).InBounds()
}

// ScreenToWorld 将屏幕坐标转换为世界坐标
// 游戏中摄像机只在水平方向偏移
func ScreenToWorld(screenX, screenY, cameraX float64) (worldX, worldY float64) {
	return screenX + cameraX, screenY
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func WorldToScreen(worldX, worldY, cameraX float64) (screenX, screenY float64) {
	return worldX - cameraX, worldY
}
