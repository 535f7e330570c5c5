package systems

import (
	"testing"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{Remaining: 10})

	system.Update(5)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.Remaining != 5 {
		t.Errorf("Expected Remaining=5, got %f", lifetime.Remaining)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		delta     float64
		expired   bool
	}{
		{"exactly zero survives", 10, 10, false},
		{"below zero expires", 10, 10.5, true},
		{"zero lifetime expires on first tick", 0, 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewLifetimeSystem(em)

			id := em.CreateEntity()
			em.AddComponent(id, &components.LifetimeComponent{Remaining: tt.remaining})

			system.Update(tt.delta)
			em.RemoveMarkedEntities()

			if alive := em.IsAlive(id); alive == tt.expired {
				t.Errorf("alive = %v, want %v", alive, !tt.expired)
			}
		})
	}
}
