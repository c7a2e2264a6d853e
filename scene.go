package artemis

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/artemisgen/artemis/glrt/core"
)

// SceneDef defines the initial state of a scene.
type SceneDef struct {
	Props    []PropDef
	Lights   []LightDef
	Vehicles VehicleDef
}

// PropRole says which transform drives a prop each frame.
type PropRole int

const (
	PropStatic PropRole = iota
	// PropLauncher follows the mobile launcher transport.
	PropLauncher
	// PropRocket follows the launch sequence and hides above the ceiling.
	PropRocket
)

// PropDef is a drawable scene object built from procedural geometry.
type PropDef struct {
	Name         string
	Role         PropRole
	Procedural   ProceduralDef
	Position     mgl32.Vec3
	Scale        mgl32.Vec3
	Colour       mgl32.Vec3
	TextureScale float32
	// Textured props sample the ground texture.
	Textured bool
}

type ProceduralDef struct {
	Type   string // "plane", "box"
	Params []float32
}

// LightRole says how a light is updated after load.
type LightRole int

const (
	LightStatic LightRole = iota
	LightNozzleLeft
	LightNozzleRight
	// LightDeck lights are placed on the launcher in definition order.
	LightDeck
)

// LightDef defines a light instantiation.
type LightDef struct {
	Name      string
	Role      LightRole
	Kind      core.LightKind
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Colour    mgl32.Vec3
	Intensity float32
	// Attenuation is (linear, quadratic); zero keeps the default.
	Attenuation [2]float32
}

// VehicleDef is the wandering truck population.
type VehicleDef struct {
	Min, Max int
	Size     mgl32.Vec3
	// Colours are picked at random per truck.
	Colours []mgl32.Vec3
}

// ArtemisScene is the launch site: ground, assembly building, mobile
// launcher with its rocket, and the night lighting.
func ArtemisScene(minVehicles, maxVehicles int) SceneDef {
	white := mgl32.Vec3{1, 1, 1}
	return SceneDef{
		Props: []PropDef{
			{
				Name:         "ground",
				Procedural:   ProceduralDef{Type: "plane"},
				Scale:        mgl32.Vec3{10, 10, 10},
				Colour:       mgl32.Vec3{0.35, 0.45, 0.25},
				TextureScale: 20,
				Textured:     true,
			},
			{
				Name:       "vab",
				Procedural: ProceduralDef{Type: "box", Params: []float32{3, 3.6, 4}},
				Position:   mgl32.Vec3{6.3, 0, 0},
				Colour:     mgl32.Vec3{0.75, 0.75, 0.72},
			},
			{
				Name:       "mobile-launcher",
				Role:       PropLauncher,
				Procedural: ProceduralDef{Type: "box", Params: []float32{1.4, 0.4, 1.2}},
				Colour:     mgl32.Vec3{0.3, 0.3, 0.32},
			},
			{
				Name:       "sls",
				Role:       PropRocket,
				Procedural: ProceduralDef{Type: "box", Params: []float32{0.3, 4.2, 0.3}},
				Colour:     mgl32.Vec3{0.9, 0.55, 0.25},
			},
		},
		Lights: []LightDef{
			{Name: "moon", Kind: core.LightDirectional, Colour: mgl32.Vec3{0.05, 0.11, 0.28}, Intensity: 0.5, Direction: mgl32.Vec3{-0.6, -0.5, -0.7}},
			{Name: "usa-flag", Kind: core.LightSpot, Position: mgl32.Vec3{4.8, 1.7, 0.8}, Colour: white, Intensity: 0.5, Direction: mgl32.Vec3{-0.7, 0.6, 0.3}},
			{Name: "nasa-logo", Kind: core.LightSpot, Position: mgl32.Vec3{4.8, 1.7, -0.8}, Colour: white, Intensity: 0.5, Direction: mgl32.Vec3{-0.8, 0.6, -0.3}},
			{Name: "vab-door", Kind: core.LightBulb, Position: mgl32.Vec3{5, 1.5, 0}, Colour: mgl32.Vec3{0.858, 0.458, 0.231}, Intensity: 0.01, Attenuation: [2]float32{4, 5}},
			{Name: "srb-left", Role: LightNozzleLeft, Kind: core.LightBulb, Colour: white, Intensity: 1},
			{Name: "srb-right", Role: LightNozzleRight, Kind: core.LightBulb, Colour: white, Intensity: 1},
			{Name: "ml-deck-1", Role: LightDeck, Kind: core.LightBulb, Colour: white, Intensity: 0.25},
			{Name: "ml-deck-2", Role: LightDeck, Kind: core.LightBulb, Colour: white, Intensity: 0.25},
			{Name: "ml-deck-3", Role: LightDeck, Kind: core.LightBulb, Colour: white, Intensity: 0.25},
		},
		Vehicles: VehicleDef{
			Min:  minVehicles,
			Max:  maxVehicles,
			Size: mgl32.Vec3{0.3, 0.25, 0.5},
			Colours: []mgl32.Vec3{
				{0.8, 0.8, 0.8},
				{0.85, 0.75, 0.2},
				{0.25, 0.35, 0.6},
			},
		},
	}
}

// LoadScene builds meshes and lights for def into ctx. Lights are added in
// definition order, then one headlight per vehicle.
func LoadScene(ctx *SceneContext, assets *AssetServer, def SceneDef, rng core.Rand) error {
	count, err := vehicleCount(def.Vehicles, rng)
	if err != nil {
		return err
	}
	if need := len(def.Lights) + count; need > ctx.Lights.Cap() {
		return fmt.Errorf("scene needs %d lights, registry holds %d", need, ctx.Lights.Cap())
	}

	for _, prop := range def.Props {
		if err := spawnProp(ctx, assets, prop); err != nil {
			return err
		}
	}

	for _, light := range def.Lights {
		spawnLight(ctx, light)
	}

	truck := assets.AddMesh(core.Box(def.Vehicles.Size.X(), def.Vehicles.Size.Y(), def.Vehicles.Size.Z()))
	for i := 0; i < count; i++ {
		spawnVehicle(ctx, truck, def.Vehicles, rng)
	}

	ctx.loaded = true
	return nil
}

func vehicleCount(def VehicleDef, rng core.Rand) (int, error) {
	if def.Min < 0 || def.Max < def.Min {
		return 0, fmt.Errorf("vehicle range %d..%d", def.Min, def.Max)
	}
	return rng.IntN(def.Max-def.Min+1) + def.Min, nil
}

func spawnProp(ctx *SceneContext, assets *AssetServer, def PropDef) error {
	var mesh core.MeshData
	switch def.Procedural.Type {
	case "plane":
		mesh = core.Plane()
	case "box":
		// Params: [w, h, d]
		if len(def.Procedural.Params) != 3 {
			return fmt.Errorf("prop %s: box needs 3 params, got %d", def.Name, len(def.Procedural.Params))
		}
		p := def.Procedural.Params
		mesh = core.Box(p[0], p[1], p[2])
	default:
		return fmt.Errorf("prop %s: unknown procedural type %q", def.Name, def.Procedural.Type)
	}

	scale := def.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	texScale := def.TextureScale
	if texScale == 0 {
		texScale = 1
	}

	p := prop{
		name:         def.Name,
		role:         def.Role,
		mesh:         assets.AddMesh(mesh),
		local:        mgl32.Translate3D(def.Position.X(), def.Position.Y(), def.Position.Z()).Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())),
		colour:       def.Colour,
		textureScale: texScale,
	}
	if def.Textured {
		p.texture = ctx.groundTexture
	}
	ctx.props = append(ctx.props, p)
	return nil
}

func spawnLight(ctx *SceneContext, def LightDef) {
	var l core.Light
	if def.Direction != (mgl32.Vec3{}) {
		l = core.NewLight(def.Kind, def.Position, def.Colour, def.Intensity, def.Direction)
	} else {
		l = core.NewLight(def.Kind, def.Position, def.Colour, def.Intensity)
	}
	if def.Attenuation != [2]float32{} {
		l.SetAttenuation(def.Attenuation[0], def.Attenuation[1])
	}
	if def.Role == LightNozzleLeft || def.Role == LightNozzleRight {
		// lit only while launched
		l.SetEnabled(false)
	}

	h := ctx.Lights.Add(l)
	switch def.Role {
	case LightNozzleLeft:
		ctx.nozzle[0] = h
	case LightNozzleRight:
		ctx.nozzle[1] = h
	case LightDeck:
		ctx.deck = append(ctx.deck, h)
	}
}

func spawnVehicle(ctx *SceneContext, mesh AssetId, def VehicleDef, rng core.Rand) {
	v := core.NewVehicle(rng)
	v.Headlight = ctx.Lights.Add(v.NewHeadlight())

	colour := mgl32.Vec3{1, 1, 1}
	if len(def.Colours) > 0 {
		colour = def.Colours[rng.IntN(len(def.Colours))]
	}
	ctx.Vehicles = append(ctx.Vehicles, v)
	ctx.vehicleLooks = append(ctx.vehicleLooks, vehicleLook{mesh: mesh, colour: colour})
}
