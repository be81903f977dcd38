package components

// AssetHandle 已加载的视觉资源句柄
// 模拟层不关心其具体类型，只在创建实体时原样转交给渲染层
type AssetHandle any

// SpriteComponent 存储实体的视觉资源
type SpriteComponent struct {
	Key   string      // 资源键（如 "plant/peashooter"、"zombie/basic"）
	Asset AssetHandle // 资源句柄，可为 nil（渲染层使用占位图形）
}
