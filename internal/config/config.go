package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// OSMFilePath points at a raw OSM XML export; PointsFilePath at an
	// already-extracted JSON snapshot. When both are empty the roster is
	// loaded from the database snapshot.
	OSMFilePath    string
	PointsFilePath string

	AutoAnalyze           bool
	TargetSpeedKmh        float64
	MaxSpacingM           float64
	MaxBearingVarianceDeg float64
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/signals/signals.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:                  port,
		DBPath:                dbPath,
		JWTSecret:             jwtSecret,
		OSMFilePath:           os.Getenv("OSM_FILE"),
		PointsFilePath:        os.Getenv("POINTS_FILE"),
		AutoAnalyze:           envBool("AUTO_ANALYZE", true),
		TargetSpeedKmh:        envFloat("TARGET_SPEED_KMH", 50),
		MaxSpacingM:           envFloat("MAX_SPACING_M", 500),
		MaxBearingVarianceDeg: envFloat("MAX_BEARING_VARIANCE_DEG", 30),
	}
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
