package components

import "github.com/yohamta/donburi"

type VitalityData struct {
	Current     float64
	Max         float64
	DamageTaken float64
}

var Vitality = donburi.NewComponentType[VitalityData]()
