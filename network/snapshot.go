package network

import (
	"github.com/automoto/burrow/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// ServerState is the authoritative state of one character in a snapshot.
type ServerState struct {
	Locomotion  netcomponents.NetLocomotionData
	Position    netcomponents.NetPositionData
	Orientation netcomponents.NetOrientationData
}

// FindState decodes the character with id from a snapshot. It reports false
// when the entity is missing or lacks its locomotion or position component.
func FindState(snapshot esync.WorldSnapshot, id esync.NetworkId) (ServerState, bool) {
	for _, ent := range snapshot {
		if ent.Id != id {
			continue
		}

		var (
			st              ServerState
			hasLoco, hasPos bool
		)
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			switch v := instance.(type) {
			case netcomponents.NetLocomotionData:
				st.Locomotion, hasLoco = v, true
			case netcomponents.NetPositionData:
				st.Position, hasPos = v, true
			case netcomponents.NetOrientationData:
				st.Orientation = v
			}
		}
		return st, hasLoco && hasPos
	}
	return ServerState{}, false
}
