package components

import "github.com/yohamta/donburi"

type SensorData struct {
	Name string
	// Touched counts the frames something stood inside the sensor.
	Touched int
}

var Sensor = donburi.NewComponentType[SensorData]()
