package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/jeepdrive/archetypes"
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/systems"
	"github.com/automoto/jeepdrive/systems/factory"
	"github.com/automoto/jeepdrive/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DriveScene is the driving demo: one vehicle, its obstacles and a chase
// camera.
type DriveScene struct {
	ecs     *ecs.ECS
	fsys    fs.FS
	router  *systems.CollisionRouter
	vehicle *donburi.Entry
	err     error

	debugAttached bool
	once          sync.Once
}

// NewDriveScene creates a scene that reads its level from fsys.
func NewDriveScene(fsys fs.FS) *DriveScene {
	return &DriveScene{fsys: fsys}
}

func (ds *DriveScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	// The overlay is attached the first time it is switched on.
	if !ds.debugAttached {
		if entry, ok := components.Debug.First(ds.ecs.World); ok && components.Debug.Get(entry).Enabled {
			ds.attachDebug()
		}
	}
}

func (ds *DriveScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

// Err returns the error that left the scene without a vehicle, if any.
func (ds *DriveScene) Err() error {
	return ds.err
}

// Configure builds the scene. Update calls it on the first tick.
func (ds *DriveScene) Configure() {
	ds.once.Do(ds.configure)
}

// ECS exposes the scene's ECS.
func (ds *DriveScene) ECS() *ecs.ECS {
	return ds.ecs
}

func (ds *DriveScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateToggles)
	ecs.AddSystem(systems.UpdateObstacleEdits)
	ecs.AddSystem(systems.UpdateVehicle)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateBodySync)
	ecs.AddSystem(systems.UpdateCollisionEvents)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateSpeedObservers)
	ecs.AddSystem(systems.UpdateClips)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawWorld)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)

	ds.ecs = ecs

	factory.CreateSettings(ecs)
	factory.CreateCamera(ecs)
	if cfg.Debug.Enabled {
		ds.attachDebug()
	}

	ds.router = systems.NewCollisionRouter()
	systems.DefaultCollisionPolicy(ds.router)
	ds.router.Subscribe(ecs.World)
	systems.SpeedChanged.Subscribe(ecs.World, systems.ClipSpeedObserver)
	systems.SpeedChanged.Subscribe(ecs.World, systems.EngineAudioObserver)

	if metrics, err := systems.NewMetrics(); err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
	} else {
		metrics.Watch(ds.router, tags.BodyWall, tags.BodyJeep)
		systems.SpeedChanged.Subscribe(ecs.World, metrics.ObserveSpeed)
	}

	if err := ds.populate(); err != nil {
		ds.err = err
		if entry, ok := components.Level.First(ecs.World); ok {
			components.Level.Get(entry).LoadErr = err
		}
		log.Error().Err(err).Msg("scene setup failed, vehicle not spawned")
		return
	}

	if err := systems.CreateEngineAudio(ecs); err != nil {
		log.Warn().Err(err).Msg("engine audio disabled")
	}
}

// populate creates the floor, obstacles and vehicle, and points the camera
// at the vehicle.
func (ds *DriveScene) populate() error {
	if _, err := factory.CreateFloor(ds.ecs); err != nil {
		return err
	}
	if _, err := factory.CreateLevel(ds.ecs, ds.fsys, cfg.Level.Path); err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	vehicle, err := factory.CreateVehicle(ds.ecs)
	if err != nil {
		return err
	}
	ds.vehicle = vehicle

	if entry, ok := components.PhysicsWorld.First(ds.ecs.World); ok {
		for _, body := range components.PhysicsWorld.Get(entry).Bodies() {
			ds.router.Watch(ds.ecs.World, body)
		}
	}

	systems.SetTarget(ds.ecs, vehicle, cfg.Camera.SnapOnTarget)
	return nil
}

func (ds *DriveScene) attachDebug() {
	ds.ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebugOverlay)
	ds.debugAttached = true
}
