// Package input 把 ebiten 的键盘状态转换为离散的按键事件
package input

import (
	"github.com/decker502/coredefense/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyCodes ebiten 按键到按键代码的映射，未列出的按键被忽略
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  types.KeyArrowLeft,
	ebiten.KeyArrowRight: types.KeyArrowRight,
	ebiten.KeyArrowUp:    types.KeyArrowUp,
	ebiten.KeyArrowDown:  types.KeyArrowDown,
	ebiten.KeyR:          types.KeyR,
	ebiten.KeySpace:      types.KeySpace,
	ebiten.KeyM:          types.KeyM,
}

// KeyCode 返回按键对应的按键代码，不支持的按键返回空字符串
func KeyCode(key ebiten.Key) string {
	return keyCodes[key]
}

// Keyboard 每帧轮询一次键盘
// 需要在 ebiten 的 Update 中调用，inpututil 的“刚按下/刚抬起”以帧为单位
type Keyboard struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	focused  bool
}

// NewKeyboard 创建键盘轮询器
func NewKeyboard() *Keyboard {
	return &Keyboard{focused: true}
}

// Poll 收集本帧的按键事件，追加到 dst 后返回
//
// 同一帧内先报告按下，再报告抬起。
//
// 返回：
//   - []types.KeyEvent: 追加后的事件列表
//   - bool: 窗口是否在本帧失去焦点（此时调用方应松开所有按键）
func (k *Keyboard) Poll(dst []types.KeyEvent) ([]types.KeyEvent, bool) {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	dst = AppendKeyEvents(dst, k.pressed, k.released)

	focused := ebiten.IsFocused()
	lostFocus := k.focused && !focused
	k.focused = focused
	return dst, lostFocus
}

// AppendKeyEvents 把按下与抬起的按键转换为事件
// 不支持的按键被丢弃
func AppendKeyEvents(dst []types.KeyEvent, pressed, released []ebiten.Key) []types.KeyEvent {
	for _, key := range pressed {
		if code := KeyCode(key); code != "" {
			dst = append(dst, types.KeyEvent{Code: code, Down: true})
		}
	}
	for _, key := range released {
		if code := KeyCode(key); code != "" {
			dst = append(dst, types.KeyEvent{Code: code, Down: false})
		}
	}
	return dst
}
