package config

// StageConfig is the root config for stage JSON files.
// Units are meters, y axis up.
type StageConfig struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Size        StageSizeConfig  `json:"size"`
	PlayerSpawn PositionConfig   `json:"playerSpawn"`
	Platforms   []PlatformConfig `json:"platforms"`
}

type StageSizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlatformConfig is a static box; Layer is the collision category bit mask
type PlatformConfig struct {
	X      float64 `json:"x"` // Left edge
	Y      float64 `json:"y"` // Bottom edge
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Layer  uint32  `json:"layer"`
}
