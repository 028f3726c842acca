package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PhysicsConfig exposes every ninja physics constant as an overridable field.
// sim.New runs with whatever PhysicsConfig it is given; nsimctl passes
// DefaultPhysicsConfig() unless a config file overrides some of its fields,
// so a caller can run variant-tuning experiments without touching source.
type PhysicsConfig struct {
	GravityFall         float64 `yaml:"gravity_fall"`
	GravityJump         float64 `yaml:"gravity_jump"`
	GroundAccel         float64 `yaml:"ground_accel"`
	AirAccel            float64 `yaml:"air_accel"`
	DragRegular         float64 `yaml:"drag_regular"`
	DragSlow            float64 `yaml:"drag_slow"`
	FrictionGround      float64 `yaml:"friction_ground"`
	FrictionGroundSlow  float64 `yaml:"friction_ground_slow"`
	FrictionWall        float64 `yaml:"friction_wall"`
	MaxHorSpeed         float64 `yaml:"max_hor_speed"`
	MaxJumpDuration     int     `yaml:"max_jump_duration"`
	MaxSurvivableImpact float64 `yaml:"max_survivable_impact"`
	Radius              float64 `yaml:"radius"`
}

// DefaultPhysicsConfig returns the exact constants from the reference
// implementation, to machine precision.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		GravityFall:         0.06666666666666665,
		GravityJump:         0.01111111111111111,
		GroundAccel:         0.06666666666666665,
		AirAccel:            0.04444444444444444,
		DragRegular:         0.9933221725495059,
		DragSlow:            0.8617738760127536,
		FrictionGround:      0.9459290248857720,
		FrictionGroundSlow:  0.8617738760127536,
		FrictionWall:        0.9113380468927672,
		MaxHorSpeed:         3.333333333333333,
		MaxJumpDuration:     45,
		MaxSurvivableImpact: 6,
		Radius:              10,
	}
}

// SimConfig controls the driver loop.
type SimConfig struct {
	MaxFrames int `yaml:"max_frames"`
}

// ReplayConfig controls trace export.
type ReplayConfig struct {
	RoundTo int    `yaml:"round_to"`
	CSVPath string `yaml:"csv_path"`
}

// LoggingConfig selects the logging verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the top-level, YAML-loadable configuration for nsim.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Sim     SimConfig     `yaml:"sim"`
	Replay  ReplayConfig  `yaml:"replay"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration the core simulation runs with when
// no override file is supplied.
func DefaultConfig() Config {
	return Config{
		Physics: DefaultPhysicsConfig(),
		Sim: SimConfig{
			MaxFrames: 100000,
		},
		Replay: ReplayConfig{
			RoundTo: 6,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file and overlays it on DefaultConfig. If path is
// empty, only the defaults are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// LevelFromString maps a config string to a LogLevel, defaulting to Info.
func LevelFromString(s string) LogLevel {
	switch s {
	case "off":
		return LogLevelOff
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}
