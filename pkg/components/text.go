package components

// TextComponent 屏幕左侧的一行文字
type TextComponent struct {
	Text string
	Y    float64 // 基线高度（画布像素）
}

// ScoreTextComponent 标记文字内容跟随当前分数
type ScoreTextComponent struct{}
