package components

// HitboxComponent 圆形碰撞体
// 半径在实体创建时由精灵边长换算，之后保持不变
type HitboxComponent struct {
	Radius float64 // 碰撞半径（像素）
}
