package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSensor(ecs *ecs.ECS, name string, box collision.Rect) *donburi.Entry {
	sensor := archetypes.Sensor.Spawn(ecs)
	components.Sensor.SetValue(sensor, components.SensorData{Name: name})
	handler := &sensorHandler{entityHandler{entry: sensor, kind: collision.KindSensor}}
	newCollider(ecs, sensor, box, collision.KindSensor, handler)
	return sensor
}
