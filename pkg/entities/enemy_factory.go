package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/types"
	"github.com/decker502/coredefense/pkg/utils"
)

// NewEnemyEntity 创建敌人实体
//
// 所有敌人共享：位置/速度、圆形碰撞体、尾迹、随场地旋转、敌人标记与行为组件。
// 各原型的初始状态：
//   - Waiting: 休眠时间 U(0, WaitingMaxWaitMs)
//   - Wiz: 召唤倒计时为完整间隔
//   - GreyGoo: 默认复制次数（只有默认次数的实例给分）
//   - Tp: 初始速度直接指向中心
//
// 参数:
//   - em: 实体管理器
//   - cfg: 场地配置
//   - rng: 随机源（nil 使用全局随机源）
//   - enemyType: 敌人原型，不能是 EnemyProtoBasic（使用 NewProtoBasicEntity）
//   - pos: 出生位置
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，失败时返回 0
//   - error: 未知原型时返回错误
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, rng *rand.Rand, enemyType types.EnemyType, pos utils.Vec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	tuning := cfg.Enemies
	behavior := &components.BehaviorComponent{Type: enemyType}

	switch enemyType {
	case types.EnemyBasic, types.EnemyScared, types.EnemySwirl:
	case types.EnemyWaiting:
		behavior.ActionTimer = utils.RandFloat64(rng) * tuning.WaitingMaxWaitMs
	case types.EnemyWiz:
		behavior.ActionTimer = tuning.WizSpawnIntervalMs
	case types.EnemyGreyGoo:
		return NewGreyGooEntity(em, cfg, pos, tuning.GreyGooSpawnsLeft), nil
	case types.EnemyTp:
		behavior.ActionTimer = tuning.TpIntervalMs
	default:
		return 0, fmt.Errorf("cannot create enemy of type %s", enemyType)
	}

	id := newEnemyBase(em, cfg, enemyType, pos, behavior, true)

	if enemyType == types.EnemyTp {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		SetVelocity(transform, utils.VelTowardsCenter(pos, cfg.Center(), tuning.TpSpeed), cfg.Epsilon)
	}

	return id, nil
}

// NewGreyGooEntity 创建自我复制的 GreyGoo
//
// spawnsLeft 为该实例还能复制的次数；只有以默认次数创建的实例被消灭时给分，
// 复制出的克隆体不给分。
func NewGreyGooEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, pos utils.Vec, spawnsLeft int) ecs.EntityID {
	behavior := &components.BehaviorComponent{
		Type:        types.EnemyGreyGoo,
		ActionTimer: cfg.Enemies.GreyGooSpawnIntervalMs,
		SpawnsLeft:  spawnsLeft,
	}
	givesPoints := spawnsLeft == cfg.Enemies.GreyGooSpawnsLeft
	return newEnemyBase(em, cfg, types.EnemyGreyGoo, pos, behavior, givesPoints)
}

// NewProtoBasicEntity 创建召唤中的 ProtoBasic
//
// ProtoBasic 飞向 target，到达后变成 Basic。
// 它不带 EnemyComponent：不会被碰撞检测命中，也不会触发游戏结束；不产生尾迹。
func NewProtoBasicEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, pos, target utils.Vec) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Pos: pos})
	em.AddComponent(id, &components.HitboxComponent{Radius: config.RadiusForSize(cfg.Sprites.ProtoBasic)})
	em.AddComponent(id, &components.TrailComponent{
		TimeToParticle: cfg.Particles.TrailIntervalMs,
		ParticleSpeed:  0,
	})
	em.AddComponent(id, &components.ArenaSpinComponent{})
	em.AddComponent(id, &components.BehaviorComponent{
		Type:   types.EnemyProtoBasic,
		Target: target,
	})
	em.AddComponent(id, &components.RenderComponent{
		Layer: components.LayerGameplay,
		Kind:  components.SpriteShip,
		Name:  EnemySpriteName(types.EnemyProtoBasic),
		Size:  cfg.Sprites.ProtoBasic,
		Color: EnemyColor(types.EnemyProtoBasic),
	})
	return id
}

func newEnemyBase(em *ecs.EntityManager, cfg *config.ArenaConfig, enemyType types.EnemyType, pos utils.Vec,
	behavior *components.BehaviorComponent, givesPoints bool) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Pos: pos})
	em.AddComponent(id, &components.HitboxComponent{Radius: config.RadiusForSize(cfg.Sprites.Enemy)})
	em.AddComponent(id, &components.TrailComponent{
		TimeToParticle: cfg.Particles.TrailIntervalMs,
		ParticleSpeed:  cfg.Enemies.TrailSpeed,
	})
	em.AddComponent(id, &components.ArenaSpinComponent{})
	em.AddComponent(id, &components.EnemyComponent{GivesPoints: givesPoints})
	em.AddComponent(id, behavior)
	em.AddComponent(id, &components.RenderComponent{
		Layer: components.LayerGameplay,
		Kind:  components.SpriteShip,
		Name:  EnemySpriteName(enemyType),
		Size:  cfg.Sprites.Enemy,
		Color: EnemyColor(enemyType),
	})
	return id
}
