package types

// 按键代码（与浏览器 KeyboardEvent.code 一致）
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyR          = "KeyR"
	KeySpace      = "Space"
	KeyM          = "KeyM"
)

// KeyEvent 一次按键按下或抬起
// 未识别的 Code 由输入系统忽略
type KeyEvent struct {
	Code string
	Down bool
}
