package config

import "testing"

// TestGetGridWorldBounds 测试草坪边界计算
func TestGetGridWorldBounds(t *testing.T) {
	startX, startY, endX, endY := GetGridWorldBounds()

	if startX != 252.0 || startY != 72.0 {
		t.Errorf("start = (%.1f, %.1f), want (252, 72)", startX, startY)
	}
	if endX != 972.0 {
		t.Errorf("endX = %.1f, want 972", endX)
	}
	if endY != 572.0 {
		t.Errorf("endY = %.1f, want 572", endY)
	}
}

// TestPlantCardScreenRect 测试卡片矩形不重叠
func TestPlantCardScreenRect(t *testing.T) {
	tests := []struct {
		name  string
		index int
		wantX float64
	}{
		{"第1张卡片", 0, PlantCardStartX},
		{"第2张卡片", 1, PlantCardStartX + PlantCardWidth + PlantCardSpacing},
		{"第3张卡片", 2, PlantCardStartX + 2*(PlantCardWidth+PlantCardSpacing)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := PlantCardScreenRect(tt.index)
			if x != tt.wantX {
				t.Errorf("x = %.1f, want %.1f", x, tt.wantX)
			}
			if y != PlantCardStartY || w != PlantCardWidth || h != PlantCardHeight {
				t.Errorf("unexpected rect (%.1f, %.1f, %.1f, %.1f)", x, y, w, h)
			}
		})
	}
}

// TestToolbarAboveLawn 工具栏和卡片不能遮住草坪第 0 行
func TestToolbarAboveLawn(t *testing.T) {
	if ToolbarHeight > GridWorldStartY {
		t.Errorf("ToolbarHeight = %.1f overlaps lawn row 0 starting at %.1f", ToolbarHeight, GridWorldStartY)
	}
	for i := 0; i < 3; i++ {
		_, y, _, h := PlantCardScreenRect(i)
		if y+h > GridWorldStartY {
			t.Errorf("card %d bottom %.1f overlaps lawn row 0 starting at %.1f", i, y+h, GridWorldStartY)
		}
	}
}
