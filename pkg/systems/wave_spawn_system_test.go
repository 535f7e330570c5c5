package systems

import (
	"fmt"
	"sort"
	"testing"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/types"
)

func enemyTypes(session *game.Session) []string {
	var names []string
	for _, id := range session.EnemyList() {
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](session.EntityManager(), id)
		names = append(names, behavior.Type.String())
	}
	sort.Strings(names)
	return names
}

func TestScriptedWaves(t *testing.T) {
	tests := []struct {
		score int
		want  []string
	}{
		{0, []string{"basic"}},
		{1, []string{"swirl", "tp"}},
		{2, []string{"scared", "tp"}},
		{3, []string{"scared", "tp"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			session, audio := newTestSession()
			system := NewWaveSpawnSystem(session, nil)
			session.Score = tt.score

			spawned := system.Update(16)

			got := enemyTypes(session)
			if len(got) != len(tt.want) || spawned != len(tt.want) {
				t.Fatalf("score %d: spawned %v, want %v", tt.score, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("score %d: spawned %v, want %v", tt.score, got, tt.want)
				}
			}
			if audio.count(game.SoundEnemySpawn) != len(tt.want) {
				t.Errorf("spawn cues = %d, want %d", audio.count(game.SoundEnemySpawn), len(tt.want))
			}
		})
	}
}

func TestSpawnCountdown(t *testing.T) {
	session, _ := newTestSession()
	system := NewWaveSpawnSystem(session, nil)

	// 第一波在第一个 tick 生成
	if n := system.Update(16); n != 1 {
		t.Fatalf("first tick spawned %d, want 1", n)
	}
	if session.TimeToEnemySpawn != 10000 {
		t.Errorf("countdown = %v, want reset to 10000", session.TimeToEnemySpawn)
	}

	if n := system.Update(9999); n != 0 {
		t.Errorf("spawned %d before the interval elapsed", n)
	}
	if n := system.Update(1); n != 1 {
		t.Errorf("spawned %d at the interval, want 1", n)
	}
	if system.WavesSpawned() != 2 {
		t.Errorf("waves = %d, want 2", system.WavesSpawned())
	}
}

func TestRandomWaveSizes(t *testing.T) {
	tests := []struct {
		score    int
		minCount int
		maxCount int
	}{
		{4, 2, 4},
		{15, 2, 4},
		{16, 3, 6},
		{63, 3, 6},
		{64, 4, 8},
	}

	for _, tt := range tests {
		session, _ := newTestSession()
		system := NewWaveSpawnSystem(session, nil)
		for i := 0; i < 20; i++ {
			names := system.PlanWave(tt.score)
			if len(names) < tt.minCount || len(names) > tt.maxCount {
				t.Errorf("score %d: wave %v outside [%d,%d]", tt.score, names, tt.minCount, tt.maxCount)
			}
			for _, name := range names {
				if name == types.EnemyProtoBasic.String() {
					t.Errorf("score %d: waves must not contain protoBasic", tt.score)
				}
			}
		}
	}
}

func TestCustomRulesDriveWaves(t *testing.T) {
	rules := config.DefaultSpawnRules()
	rules.Scripted = nil
	rules.Tiers = nil
	rules.DefaultCount = 3
	rules.Bands = []config.WeightedBand{{Enemies: []string{"wiz"}, Weight: 1}}

	session, _ := newTestSession()
	system := NewWaveSpawnSystem(session, rules)

	if n := system.SpawnWave(); n != 3 {
		t.Fatalf("spawned %d, want 3", n)
	}
	for _, name := range enemyTypes(session) {
		if name != "wiz" {
			t.Errorf("unexpected %s", name)
		}
	}
}
