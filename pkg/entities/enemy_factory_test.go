package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/types"
	"github.com/decker502/coredefense/pkg/utils"
)

// TestNewEnemyEntity 测试各原型敌人的公共组件
func TestNewEnemyEntity(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name      string
		enemyType types.EnemyType
	}{
		{"basic", types.EnemyBasic},
		{"waiting", types.EnemyWaiting},
		{"wiz", types.EnemyWiz},
		{"greyGoo", types.EnemyGreyGoo},
		{"scared", types.EnemyScared},
		{"swirl", types.EnemySwirl},
		{"tp", types.EnemyTp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			pos := utils.V(100, 600)

			id, err := NewEnemyEntity(em, cfg, rng, tt.enemyType, pos)
			if err != nil {
				t.Fatalf("NewEnemyEntity() error = %v", err)
			}

			transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
			if !ok {
				t.Fatal("missing TransformComponent")
			}
			if transform.Pos != pos {
				t.Errorf("pos = %v, want %v", transform.Pos, pos)
			}

			hitbox, ok := ecs.GetComponent[*components.HitboxComponent](em, id)
			if !ok || math.Abs(hitbox.Radius-16*math.Sqrt2) > 1e-9 {
				t.Errorf("unexpected hitbox %+v", hitbox)
			}

			enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
			if !ok || !enemy.GivesPoints {
				t.Error("wave enemies should give points")
			}

			behavior, ok := ecs.GetComponent[*components.BehaviorComponent](em, id)
			if !ok || behavior.Type != tt.enemyType {
				t.Errorf("behavior = %+v, want type %v", behavior, tt.enemyType)
			}

			render, ok := ecs.GetComponent[*components.RenderComponent](em, id)
			if !ok || render.Layer != components.LayerGameplay {
				t.Error("enemy should render on the gameplay layer")
			}
			if render.Name != tt.enemyType.String()+"Enemy" {
				t.Errorf("sprite name = %q", render.Name)
			}

			if !ecs.HasComponent[*components.ArenaSpinComponent](em, id) {
				t.Error("enemy should spin with the arena")
			}
		})
	}
}

func TestNewEnemyEntityRejectsProtoBasic(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, err := NewEnemyEntity(em, config.DefaultArenaConfig(), nil, types.EnemyProtoBasic, utils.ZeroVec); err == nil {
		t.Error("expected error for protoBasic")
	}
	if _, err := NewEnemyEntity(em, config.DefaultArenaConfig(), nil, types.EnemyUnknown, utils.ZeroVec); err == nil {
		t.Error("expected error for unknown type")
	}
	if em.EntityCount() != 0 {
		t.Errorf("no entity should be created, got %d", em.EntityCount())
	}
}

func TestTpStartsHoming(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	em := ecs.NewEntityManager()

	id, _ := NewEnemyEntity(em, cfg, nil, types.EnemyTp, utils.V(100, 600))
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

	want := utils.V(cfg.Enemies.TpSpeed, 0)
	if math.Abs(transform.Vel.X-want.X) > 1e-12 || math.Abs(transform.Vel.Y) > 1e-12 {
		t.Errorf("vel = %v, want %v", transform.Vel, want)
	}
	// 朝右飞行：atan2(x, -y) = π/2
	if math.Abs(transform.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("angle = %v, want π/2", transform.Angle)
	}
}

func TestGreyGooGivesPointsOnlyAtDefault(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	em := ecs.NewEntityManager()

	root := NewGreyGooEntity(em, cfg, utils.ZeroVec, cfg.Enemies.GreyGooSpawnsLeft)
	clone := NewGreyGooEntity(em, cfg, utils.ZeroVec, cfg.Enemies.GreyGooSpawnsLeft-1)

	rootEnemy, _ := ecs.GetComponent[*components.EnemyComponent](em, root)
	cloneEnemy, _ := ecs.GetComponent[*components.EnemyComponent](em, clone)
	if !rootEnemy.GivesPoints {
		t.Error("root goo should give points")
	}
	if cloneEnemy.GivesPoints {
		t.Error("clone goo should not give points")
	}
}

func TestNewProtoBasicEntity(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	em := ecs.NewEntityManager()
	target := utils.V(600, 100)

	id := NewProtoBasicEntity(em, cfg, utils.V(600, 600), target)

	if ecs.HasComponent[*components.EnemyComponent](em, id) {
		t.Error("protoBasic should not be in the enemy list")
	}
	trail, _ := ecs.GetComponent[*components.TrailComponent](em, id)
	if trail.ParticleSpeed != 0 {
		t.Errorf("protoBasic trail speed = %v, want 0", trail.ParticleSpeed)
	}
	behavior, _ := ecs.GetComponent[*components.BehaviorComponent](em, id)
	if behavior.Target != target {
		t.Errorf("target = %v, want %v", behavior.Target, target)
	}
}

func TestSetVelocityKeepsAngleWhenStopped(t *testing.T) {
	transform := &components.TransformComponent{}
	SetVelocity(transform, utils.V(-1, -1).Scale(0.1/math.Sqrt2), 0.0001)
	angle := transform.Angle

	SetVelocity(transform, utils.ZeroVec, 0.0001)
	if transform.Vel != utils.ZeroVec {
		t.Errorf("vel = %v, want zero", transform.Vel)
	}
	if transform.Angle != angle {
		t.Errorf("angle changed to %v, want %v", transform.Angle, angle)
	}
}
