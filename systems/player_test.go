package systems

import (
	"testing"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newPlayerWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, float64(cfg.C.Width), float64(cfg.C.Height))
	playerEntry := factory.CreatePlayer(e, 320)
	getOrCreateInput(e)
	return e, playerEntry
}

func holdAction(e *ecs.ECS, action cfg.ActionID, down bool) {
	input := getOrCreateInput(e)
	input.Previous[action] = input.Current[action]
	input.Current[action] = down
}

func TestPlayerDamage_ConsumesEventAndGrantsInvuln(t *testing.T) {
	e, playerEntry := newPlayerWorld(t)
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	full := health.Current

	donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{Amount: 1})
	UpdatePlayer(e)

	if health.Current != full-1 {
		t.Errorf("expected health %v after hit, got %v", full-1, health.Current)
	}
	if playerEntry.HasComponent(components.DamageEvent) {
		t.Errorf("expected damage event consumed")
	}
	if player.InvulnFrames <= 0 {
		t.Errorf("expected invulnerability frames granted")
	}

	// A second hit during invulnerability is absorbed.
	donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{Amount: 1})
	UpdatePlayer(e)
	if health.Current != full-1 {
		t.Errorf("expected invulnerable player unhurt, got %v", health.Current)
	}
	if playerEntry.HasComponent(components.DamageEvent) {
		t.Errorf("expected absorbed event still consumed")
	}
}

func TestPlayerShooting_CooldownLimitsRate(t *testing.T) {
	e, playerEntry := newPlayerWorld(t)
	player := components.Player.Get(playerEntry)

	holdAction(e, cfg.ActionShootHigh, true)
	UpdatePlayer(e)

	if got := countProjectiles(e); got != 1 {
		t.Fatalf("expected 1 shot, got %d", got)
	}
	if player.ShotCooldown != cfg.Player.ShotCooldown {
		t.Errorf("expected cooldown %d armed, got %d", cfg.Player.ShotCooldown, player.ShotCooldown)
	}

	// Holding the button during cooldown fires nothing.
	UpdatePlayer(e)
	if got := countProjectiles(e); got != 1 {
		t.Errorf("expected cooldown to suppress the second shot, got %d", got)
	}

	player.ShotCooldown = 1
	UpdatePlayer(e)
	if got := countProjectiles(e); got != 2 {
		t.Errorf("expected a shot once the cooldown drained, got %d", got)
	}
}

func TestPlayerDefeated(t *testing.T) {
	e, playerEntry := newPlayerWorld(t)
	health := components.Health.Get(playerEntry)

	if PlayerDefeated(e) {
		t.Fatalf("fresh player reported defeated")
	}

	health.Current = 0
	UpdatePlayer(e)
	if !PlayerDefeated(e) {
		t.Errorf("expected defeat at zero health")
	}
	if state := components.State.Get(playerEntry); state.CurrentState != cfg.Die {
		t.Errorf("expected Die state, got %v", state.CurrentState)
	}
}

func TestResetPlayer(t *testing.T) {
	e, playerEntry := newPlayerWorld(t)
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	health.Current = 0
	player.InvulnFrames = 30
	donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{Amount: 1})

	ResetPlayer(e, 200)

	if health.Current != health.Max {
		t.Errorf("expected full health after reset, got %v", health.Current)
	}
	if player.InvulnFrames != 0 {
		t.Errorf("expected cleared invulnerability, got %d", player.InvulnFrames)
	}
	if playerEntry.HasComponent(components.DamageEvent) {
		t.Errorf("expected stale damage event dropped")
	}
	obj := components.Object.Get(playerEntry)
	if got := obj.X + obj.W/2; got != 200 {
		t.Errorf("expected player centered at spawn 200, got %v", got)
	}
}
