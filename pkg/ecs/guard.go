package ecs

import "log"

// Guard 执行单个实体的更新或绘制，panic 会被恢复并记录
//
// 一个实体出错不会中断整个遍历：调用方照常处理下一个实体。
//
// 返回：
//   - bool: fn 是否正常返回
func Guard(system string, id EntityID, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] entity %d failed: %v", system, id, r)
			ok = false
		}
	}()
	fn()
	return true
}
