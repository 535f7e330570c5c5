package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/utils"
)

// NewParticleEntity 创建一个粒子
//
// 初始角度随机，角速度 U(-max, max)，寿命 U(0, LifetimeMaxMs)，颜色从 ParticleColors 中随机选择。
func NewParticleEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, rng *rand.Rand, pos, vel utils.Vec) ecs.EntityID {
	p := cfg.Particles
	id := em.CreateEntity()
	tint := ParticleColors[utils.RandIntn(rng, len(ParticleColors))]

	em.AddComponent(id, &components.TransformComponent{
		Pos:   pos,
		Angle: utils.RandFloat64(rng) * 2 * math.Pi,
	})
	em.AddComponent(id, &components.ParticleComponent{
		Vel:    vel,
		AngVel: utils.RandFloat64(rng)*2*p.AngVelMax - p.AngVelMax,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		Remaining: utils.RandFloat64(rng) * p.LifetimeMaxMs,
	})
	em.AddComponent(id, &components.RenderComponent{
		Layer: components.LayerParticles,
		Kind:  components.SpriteParticle,
		Name:  "particle",
		Size:  p.Size,
		Color: tint,
	})
	return id
}

// NewExplosion 在 pos 周围生成一圈向外飞散的粒子
//
// 每个粒子取随机方向 r̂，出生于 pos + r̂·ExplosionOffset，速度 r̂·ExplosionSpeed。
// 返回生成的粒子数量。
func NewExplosion(em *ecs.EntityManager, cfg *config.ArenaConfig, rng *rand.Rand, pos utils.Vec) int {
	p := cfg.Particles
	for i := 0; i < p.ExplosionCount; i++ {
		dir := utils.RandomInRadius(1, rng)
		NewParticleEntity(em, cfg, rng, pos.Add(dir.Scale(p.ExplosionOffset)), dir.Scale(p.ExplosionSpeed))
	}
	return p.ExplosionCount
}
