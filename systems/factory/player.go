package factory

import (
	"github.com/automoto/burrow/archetypes"
	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/profile"
	"github.com/automoto/burrow/shared/arena"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns a player at the arena spawn point for index. The tuning
// is the given base config with the player's profile applied.
func CreatePlayer(w donburi.World, a *arena.Arena, name string, index int, prof profile.Profile, base cfg.LocomotionConfig, extra ...donburi.IComponentType) *donburi.Entry {
	player := archetypes.Player.Spawn(w, extra...)

	body := a.NewBody(a.Spawn(index))
	components.Body.SetValue(player, components.BodyData{Body: body})

	components.Player.SetValue(player, components.PlayerData{
		Name:  name,
		Index: index,
	})

	state := locomotion.NewState(0)
	state.Power = prof.PowerMode()
	components.Locomotion.SetValue(player, components.LocomotionData{
		State: state,
	})
	components.Tuning.SetValue(player, components.TuningData{
		Config: prof.Apply(base),
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{})
	components.Profile.SetValue(player, components.ProfileData{Profile: prof})

	return player
}

// RemovePlayer takes the player's body out of the arena and deletes the entity.
func RemovePlayer(w donburi.World, a *arena.Arena, player *donburi.Entry) {
	if !player.Valid() {
		return
	}
	if body := components.Body.Get(player); body.Body != nil && a != nil {
		a.RemoveBody(body.Body)
	}
	w.Remove(player.Entity())
}
