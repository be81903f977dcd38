package ecs

import "reflect"

// 泛型访问 API
// 组件类型在编译期确定，调用方不需要手动构造 reflect.Type 和做类型断言：
//
//	plant, ok := ecs.GetComponent[*components.PlantComponent](em, id)
//	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](em) { ... }

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件（同类型组件会被覆盖）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.addComponent(id, component)
}

// GetComponent 获取实体的特定类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.getComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := em.getComponent(id, typeOf[T]())
	return ok
}

// RemoveComponent 从实体移除指定类型的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.removeComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 A 的所有存活实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.getEntitiesWith(typeOf[A]())
}

// GetEntitiesWith2 查询同时拥有组件 A、B 的所有存活实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.getEntitiesWith(typeOf[A](), typeOf[B]())
}

// GetEntitiesWith3 查询同时拥有组件 A、B、C 的所有存活实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.getEntitiesWith(typeOf[A](), typeOf[B](), typeOf[C]())
}
