package ecs

import "testing"

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 指针组件：修改应直接反映到存储中
	pos.X = 150
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 150 {
		t.Errorf("Expected mutation through pointer, got X=%f", again.X)
	}

	// 未添加的类型
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should not be found")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity_Deferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{X: 5})

	// 标记删除
	em.DestroyEntity(id)

	// 标记后组件仍可读取，但不再出现在查询结果中
	if _, ok := GetComponent[*testPositionComponent](em, id); !ok {
		t.Error("Component should still be readable before RemoveMarkedEntities")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}
	if !em.Exists(id) {
		t.Error("Marked entity should still exist until cleanup")
	}
	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 0 {
		t.Errorf("Marked entity should be excluded from queries, got %v", got)
	}

	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("Component should be gone after RemoveMarkedEntities")
	}
}

func TestDestroyEntity_Idempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if len(em.entitiesToDestroy) != 1 {
		t.Errorf("Expected entity queued once, got %d", len(em.entitiesToDestroy))
	}

	em.RemoveMarkedEntities()

	// 已删除的实体再次标记不应入队
	em.DestroyEntity(id)
	if len(em.entitiesToDestroy) != 0 {
		t.Errorf("Removed entity should not be queued again, got %d", len(em.entitiesToDestroy))
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	tests := []struct {
		name    string
		withPos bool
		withVel bool
		withTag bool
	}{
		{"pos only", true, false, false},
		{"pos+vel", true, true, false},
		{"pos+vel+tag", true, true, true},
		{"vel only", false, true, false},
	}

	ids := make([]EntityID, len(tests))
	for i, tt := range tests {
		id := em.CreateEntity()
		ids[i] = id
		if tt.withPos {
			AddComponent(em, id, &testPositionComponent{})
		}
		if tt.withVel {
			AddComponent(em, id, &testVelocityComponent{})
		}
		if tt.withTag {
			AddComponent(em, id, &testTagComponent{})
		}
	}

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 3 {
		t.Errorf("Expected 3 entities with position, got %d", len(got))
	}
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with position+velocity, got %d", len(got))
	}
	got := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em)
	if len(got) != 1 || got[0] != ids[2] {
		t.Errorf("Expected only entity %d, got %v", ids[2], got)
	}
}

// TestGetEntitiesWith_Ordered 查询结果按创建顺序返回
func TestGetEntitiesWith_Ordered(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
	}

	got := GetEntitiesWith1[*testPositionComponent](em)
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Query result not sorted at %d: %v", i, got)
		}
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 500; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{})
		if i%2 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
