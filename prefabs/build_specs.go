package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name and a map of component name to that
// component's settings.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one generic component entry into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Shape  string     `yaml:"shape"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type LineRenderComponentSpec struct {
	Width float32    `yaml:"width"`
	Color *YAMLColor `yaml:"color"`
}

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}

type PhysicsBodyComponentSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	LinearDrag float64 `yaml:"linear_drag"`
	Static     bool    `yaml:"static"`
	Sensor     bool    `yaml:"sensor"`
}

type CollisionLayerComponentSpec struct {
	Layer int `yaml:"layer"`
}

type PickupComponentSpec struct {
	Color        string  `yaml:"color"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobSpeed     float64 `yaml:"bob_speed"`
}

type ExplosionComponentSpec struct {
	Radius   float64    `yaml:"radius"`
	Duration float64    `yaml:"duration"`
	Color    *YAMLColor `yaml:"color"`
}

type TTLComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}

// ActorInfoComponentSpec is the tunable part of an actor. Distances are in
// world units and times in seconds.
type ActorInfoComponentSpec struct {
	Color           string         `yaml:"color"`
	Speed           float64        `yaml:"speed"`
	DeviationLimit  float64        `yaml:"deviation_limit"`
	TimeBeforeBoost float64        `yaml:"time_before_boost"`
	Booster         float64        `yaml:"booster"`
	BoostCurve      BoostCurveSpec `yaml:"boost_curve"`
	ShakeAmount     float64        `yaml:"shake_amount"`
	ShakeTime       float64        `yaml:"shake_time"`
	LaserReloadTime float64        `yaml:"laser_reload_time"`
	CanShoot        *bool          `yaml:"can_shoot"`
}

// BoostCurveSpec selects one of: a constant, keyframes or a tengo script
// under prefabs/scripts.
type BoostCurveSpec struct {
	Constant  *float64       `yaml:"constant"`
	Keyframes []KeyframeSpec `yaml:"keyframes"`
	Script    string         `yaml:"script"`
}

type KeyframeSpec struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}
