package components

// BehaviorType 定义实体的行为类型
// 用于 BehaviorSystem 决定如何处理该实体
type BehaviorType int

const (
	// BehaviorSunflower 向日葵行为：定期生产阳光
	BehaviorSunflower BehaviorType = iota
	// BehaviorPeashooter 豌豆射手行为：同行有僵尸时定期发射豌豆
	BehaviorPeashooter
	// BehaviorWallnut 坚果墙行为：纯防御，无每帧逻辑
	BehaviorWallnut
	// BehaviorPeaProjectile 豌豆子弹行为：向右移动并检测碰撞
	BehaviorPeaProjectile
	// BehaviorZombie 僵尸行为：行走/啃食，具备跳跃能力的僵尸可跳过一株植物
	BehaviorZombie
)

// BehaviorComponent 标识实体的行为类型
// 此组件用于让 BehaviorSystem 识别实体应执行何种行为逻辑
type BehaviorComponent struct {
	Type BehaviorType
}
