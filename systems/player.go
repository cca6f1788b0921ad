package systems

import (
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/automoto/lyricfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer handles player movement, shooting and incoming damage.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	processPlayerDamage(ecs, playerEntry, player)

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.ShotCooldown > 0 {
		player.ShotCooldown--
	}

	health := components.Health.Get(playerEntry)
	if health.Current <= 0 {
		setPlayerState(playerEntry, cfg.Die)
		return
	}

	moving := updatePlayerMovement(ecs, playerEntry, player, obj)
	updatePlayerShooting(ecs, playerEntry, player, obj)

	state := components.State.Get(playerEntry)
	if state.CurrentState != cfg.Shoot || state.StateTimer > 8 {
		if moving {
			setPlayerState(playerEntry, cfg.Walk)
		} else {
			setPlayerState(playerEntry, cfg.Idle)
		}
	}
	state.StateTimer++
}

func updatePlayerMovement(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, obj *components.ObjectData) bool {
	var dx float64
	if GetAction(ecs, cfg.ActionMoveLeft).Pressed {
		dx -= cfg.Player.MoveSpeed
		player.Direction.X = cfg.DirectionLeft
	}
	if GetAction(ecs, cfg.ActionMoveRight).Pressed {
		dx += cfg.Player.MoveSpeed
		player.Direction.X = cfg.DirectionRight
	}
	if dx == 0 {
		return false
	}

	x := obj.X + dx
	if stageEntry, ok := components.Stage.First(ecs.World); ok {
		stage := components.Stage.Get(stageEntry)
		if x < 0 {
			x = 0
		}
		if maxX := stage.Width - obj.W; x > maxX {
			x = maxX
		}
	}
	obj.X = x
	obj.Update()
	return true
}

func updatePlayerShooting(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, obj *components.ObjectData) {
	if player.ShotCooldown > 0 {
		return
	}

	high := GetAction(ecs, cfg.ActionShootHigh).Pressed
	low := GetAction(ecs, cfg.ActionShootLow).Pressed
	if !high && !low {
		return
	}

	facing := player.Direction.X
	if facing == 0 {
		facing = cfg.DirectionRight
	}

	x := obj.X + obj.W/2
	var y, speedX, speedY float64
	if high {
		// Straight up from the raised muzzle
		y = obj.Y + cfg.Player.HighShotOffsetY
		speedY = -cfg.Player.ShotSpeed
	} else {
		// Shallower angled shot to lead the boss along the catwalk
		y = obj.Y + cfg.Player.LowShotOffsetY
		speedX = cfg.Player.ShotSpeed * 0.6 * facing
		speedY = -cfg.Player.ShotSpeed * 0.8
	}

	factory.CreatePlayerShot(ecs, x, y, speedX, speedY)
	player.ShotCooldown = cfg.Player.ShotCooldown
	setPlayerState(e, cfg.Shoot)
	PlaySFX(ecs, cfg.SoundPlayerShot)
}

// processPlayerDamage consumes a pending damage event, respecting
// invulnerability frames granted by an earlier hit this frame.
func processPlayerDamage(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData) {
	if !e.HasComponent(components.DamageEvent) {
		return
	}
	event := components.DamageEvent.Get(e)
	amount := event.Amount
	donburi.Remove[components.DamageEventData](e, components.DamageEvent)

	if player.InvulnFrames > 0 {
		return
	}

	health := components.Health.Get(e)
	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}
	player.InvulnFrames = cfg.Player.InvulnFrames

	if health.Current <= 0 {
		setPlayerState(e, cfg.Die)
	} else {
		setPlayerState(e, cfg.Hit)
	}
}

func setPlayerState(e *donburi.Entry, target cfg.StateID) {
	if !e.HasComponent(components.State) {
		return
	}
	state := components.State.Get(e)
	if state.CurrentState == target {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = target
	state.StateTimer = 0
}

// ResetPlayer restores the player for a new round at the given spawn X.
func ResetPlayer(ecs *ecs.ECS, spawnX float64) {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(e)
	player.InvulnFrames = 0
	player.ShotCooldown = 0
	player.Direction = components.Vector{X: cfg.DirectionRight, Y: 0}

	health := components.Health.Get(e)
	health.Current = health.Max

	if e.HasComponent(components.DamageEvent) {
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	obj := components.Object.Get(e)
	if obj != nil && obj.Object != nil {
		obj.X = spawnX - obj.W/2
		obj.Y = cfg.Stage.FloorY - obj.H
		obj.Update()
	}

	setPlayerState(e, cfg.Idle)
}

// PlayerDefeated reports whether the player has run out of health.
func PlayerDefeated(ecs *ecs.ECS) bool {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	return components.Health.Get(e).Current <= 0
}
