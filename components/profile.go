package components

import (
	"github.com/automoto/burrow/profile"
	"github.com/yohamta/donburi"
)

type ProfileData struct {
	profile.Profile
	Dirty bool // Changed since load; saved on disconnect
}

var Profile = donburi.NewComponentType[ProfileData]()
