package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// FileName is the config file looked up by Load, without extension.
const FileName = "jeepdrive"

// ErrNoConfigFile is returned by Watch when Load found no file to watch.
var ErrNoConfigFile = errors.New("no config file loaded")

// fileConfig mirrors the layout of jeepdrive.yaml.
type fileConfig struct {
	LogLevel  string          `mapstructure:"logLevel"`
	Window    *Config         `mapstructure:"window"`
	Vehicle   *VehicleConfig  `mapstructure:"vehicle"`
	Camera    *CameraConfig   `mapstructure:"camera"`
	Physics   *PhysicsConfig  `mapstructure:"physics"`
	Obstacle  *ObstacleConfig `mapstructure:"obstacle"`
	Level     *LevelConfig    `mapstructure:"level"`
	Audio     *AudioConfig    `mapstructure:"audio"`
	UI        *UIConfig       `mapstructure:"ui"`
	Debug     *DebugConfig    `mapstructure:"debug"`
	Obstacles []ObstacleEdit  `mapstructure:"obstacles"`
}

// Load overlays jeepdrive.{yaml,json,toml} from configDir and JEEPDRIVE_*
// environment variables onto the built-in defaults. A missing file is not an
// error. Obstacle edits listed in the file are returned for the scene to
// apply once its obstacles exist.
func Load(configDir string) ([]ObstacleEdit, error) {
	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("JEEPDRIVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for _, key := range envKeys("", reflect.TypeOf(fileConfig{})) {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	fc := fileConfig{
		LogLevel: C.LogLevel,
		Window:   C,
		Vehicle:  &Vehicle,
		Camera:   &Camera,
		Physics:  &Physics,
		Obstacle: &Obstacle,
		Level:    &Level,
		Audio:    &Audio,
		UI:       &UI,
		Debug:    &Debug,
	}
	if err := viper.Unmarshal(&fc, viper.DecodeHook(decodeHook)); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	C.LogLevel = fc.LogLevel

	if err := Vehicle.Validate(); err != nil {
		return nil, err
	}
	if err := Camera.Validate(); err != nil {
		return nil, err
	}

	return fc.Obstacles, nil
}

var decodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	stringToVec3,
)

// envKeys lists the scalar leaf keys under t. AutomaticEnv only consults keys
// viper already knows, so each one is bound explicitly.
func envKeys(prefix string, t reflect.Type) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("mapstructure")
		if name == "" || name == "-" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		switch ft.Kind() {
		case reflect.Struct:
			keys = append(keys, envKeys(name, ft)...)
		case reflect.Slice, reflect.Map:
		default:
			keys = append(keys, name)
		}
	}
	return keys
}

// stringToVec3 decodes "x,y,z" (as set through the environment) into a vector.
func stringToVec3(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(mgl64.Vec3{}) {
		return data, nil
	}

	parts := strings.Split(data.(string), ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want x,y,z, got %q", ErrInvalidConfig, data)
	}
	var v mgl64.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: vector component %q: %v", ErrInvalidConfig, p, err)
		}
		v[i] = f
	}
	return v, nil
}

// Watch calls onEdits with the file's obstacle list every time the loaded
// config file changes. onEdits runs on the watcher goroutine.
func Watch(onEdits func([]ObstacleEdit)) error {
	if viper.ConfigFileUsed() == "" {
		return ErrNoConfigFile
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		edits, err := ObstacleEdits()
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name).Msg("ignoring config change")
			return
		}
		log.Info().Str("file", e.Name).Int("edits", len(edits)).Msg("config changed")
		onEdits(edits)
	})
	viper.WatchConfig()
	return nil
}

// ObstacleEdits decodes the current obstacle list.
func ObstacleEdits() ([]ObstacleEdit, error) {
	var edits []ObstacleEdit
	if err := viper.UnmarshalKey("obstacles", &edits); err != nil {
		return nil, fmt.Errorf("decode obstacles: %w", err)
	}
	return edits, nil
}

// ConfigFileUsed returns the path of the loaded config file, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
