package behavior

import (
	"log"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/types"
)

// BehaviorSystem 处理敌人原型的行为逻辑
// 根据实体的 BehaviorComponent.Type 分发到对应原型的处理函数
type BehaviorSystem struct {
	entityManager   *ecs.EntityManager
	config          *config.ArenaConfig
	session         *game.Session // 生成、移除敌人与播放音效
	logFrameCounter int           // 日志输出计数器（避免全局变量）
}

// 日志输出间隔常量
const LogOutputFrameInterval = 100 // 日志输出间隔（每N帧输出一次）

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - session: 当前会话（提供实体管理器、配置、随机源与音效）
func NewBehaviorSystem(session *game.Session) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: session.EntityManager(),
		config:        session.Config(),
		session:       session,
	}
}

// Update 更新所有拥有行为组件的实体
//
// 参数:
//   - deltaMs: 本 tick 经过的毫秒数（已作用于位置之后）
func (s *BehaviorSystem) Update(deltaMs float64) {
	ids := ecs.GetEntitiesWith2[*components.BehaviorComponent, *components.TransformComponent](s.entityManager)

	s.logFrameCounter++
	if len(ids) > 0 && s.logFrameCounter%LogOutputFrameInterval == 1 {
		log.Printf("[BehaviorSystem] 更新 %d 个行为实体 (敌人: %d)", len(ids), len(s.session.EnemyList()))
	}

	for _, id := range ids {
		// 本 tick 内已被移除（如 ProtoBasic 落地）的实体不再更新
		if !s.entityManager.IsAlive(id) {
			continue
		}
		ecs.Guard("BehaviorSystem", id, func() {
			s.dispatch(id, deltaMs)
		})
	}
}

func (s *BehaviorSystem) dispatch(id ecs.EntityID, deltaMs float64) {
	behavior, _ := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, id)
	transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

	// 根据行为类型分发
	switch behavior.Type {
	case types.EnemyBasic:
		s.handleBasicBehavior(behavior, transform, deltaMs)
	case types.EnemyWaiting:
		s.handleWaitingBehavior(behavior, transform, deltaMs)
	case types.EnemyWiz:
		s.handleWizBehavior(behavior, transform, deltaMs)
	case types.EnemyGreyGoo:
		s.handleGreyGooBehavior(behavior, transform, deltaMs)
	case types.EnemyScared:
		s.handleScaredBehavior(transform)
	case types.EnemySwirl:
		s.handleSwirlBehavior(behavior, transform, deltaMs)
	case types.EnemyTp:
		s.handleTpBehavior(behavior, transform, deltaMs)
	case types.EnemyProtoBasic:
		s.handleProtoBasicBehavior(id, behavior, transform, deltaMs)
	default:
		if s.logFrameCounter%LogOutputFrameInterval == 1 {
			log.Printf("[BehaviorSystem] ⚠️ 实体 %d 有未知行为类型: %v", id, behavior.Type)
		}
	}
}

// countdown 倒计时减去 deltaMs；到期（≤ 0）时重置为 full 并返回 true
func countdown(timer *float64, deltaMs, full float64) bool {
	*timer -= deltaMs
	if *timer > 0 {
		return false
	}
	*timer = full
	return true
}
