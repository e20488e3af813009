// Package config names the viper keys of padelmatch and their defaults.
package config

import (
	"github.com/spf13/viper"

	"padelmatch/internal/geom"
	"padelmatch/internal/mapkit"
	"padelmatch/internal/mapsync"
)

var (
	KeyCenterLat       = "map.center.lat"
	KeyCenterLng       = "map.center.lng"
	KeyZoom            = "map.zoom"
	KeyTileURL         = "map.tiles.url"
	KeyTileSubdomains  = "map.tiles.subdomains"
	KeyTileAttribution = "map.tiles.attribution"
	KeyTileMaxZoom     = "map.tiles.maxzoom"
	KeyTilesEnabled    = "map.tiles.enabled"
	KeyTileWorkers     = "map.tiles.workers"
	KeyFitPadding      = "map.fit.padding"
	KeyFitMaxZoom      = "map.fit.maxzoom"
	KeyResizeDelay     = "map.resize.delay"
	KeyKitScript       = "kit.script"
	KeyKitStylesheet   = "kit.stylesheet"
	KeyVenuesFile      = "venues.file"
	KeyLogFile         = "log.file"
	KeyLogLevel        = "log.level"
)

// DefaultKitScript is the coastline bundled with the binary; any GeoJSON URL
// or file may replace it.
func DefaultKitScript() string {
	return "builtin:denmark.geojson"
}

func DefaultKitStylesheet() string {
	return "builtin:theme.yaml"
}

func DefaultLogFile() string {
	return "padelmatch.log"
}

func DefaultLogLevel() string {
	return "info"
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	d := mapsync.DefaultConfig()
	v.SetDefault(KeyCenterLat, d.Center.Lat)
	v.SetDefault(KeyCenterLng, d.Center.Lng)
	v.SetDefault(KeyZoom, d.Zoom)
	v.SetDefault(KeyTileURL, d.TileURL)
	v.SetDefault(KeyTileSubdomains, d.Subdomains)
	v.SetDefault(KeyTileAttribution, d.Attribution)
	v.SetDefault(KeyTileMaxZoom, d.TileMaxZoom)
	v.SetDefault(KeyTilesEnabled, d.TilesEnabled)
	v.SetDefault(KeyTileWorkers, d.TileWorkers)
	v.SetDefault(KeyFitPadding, d.FitPadding)
	v.SetDefault(KeyFitMaxZoom, d.FitMaxZoom)
	v.SetDefault(KeyResizeDelay, d.ResizeDelay)
	v.SetDefault(KeyKitScript, DefaultKitScript())
	v.SetDefault(KeyKitStylesheet, DefaultKitStylesheet())
	v.SetDefault(KeyLogFile, DefaultLogFile())
	v.SetDefault(KeyLogLevel, DefaultLogLevel())
}

func HasVenuesFile(v *viper.Viper) bool {
	return v.GetString(KeyVenuesFile) != ""
}

func VenuesFile(v *viper.Viper) string {
	return v.GetString(KeyVenuesFile)
}

func LogFile(v *viper.Viper) string {
	return v.GetString(KeyLogFile)
}

func LogLevel(v *viper.Viper) string {
	return v.GetString(KeyLogLevel)
}

// KitSources returns where the map runtime is loaded from.
func KitSources(v *viper.Viper) mapkit.Sources {
	return mapkit.Sources{
		Script:     v.GetString(KeyKitScript),
		Stylesheet: v.GetString(KeyKitStylesheet),
	}
}

// Engine builds the map engine configuration. Non-positive sizes fall back
// to the defaults.
func Engine(v *viper.Viper) mapsync.Config {
	d := mapsync.DefaultConfig()
	c := mapsync.Config{
		Center:       geom.LatLng{Lat: v.GetFloat64(KeyCenterLat), Lng: v.GetFloat64(KeyCenterLng)},
		Zoom:         v.GetFloat64(KeyZoom),
		TileURL:      v.GetString(KeyTileURL),
		Subdomains:   v.GetString(KeyTileSubdomains),
		Attribution:  v.GetString(KeyTileAttribution),
		TileMaxZoom:  v.GetInt(KeyTileMaxZoom),
		TilesEnabled: v.GetBool(KeyTilesEnabled),
		TileWorkers:  v.GetInt(KeyTileWorkers),
		FitPadding:   v.GetInt(KeyFitPadding),
		FitMaxZoom:   v.GetFloat64(KeyFitMaxZoom),
		ResizeDelay:  v.GetDuration(KeyResizeDelay),
	}
	if c.TileWorkers <= 0 {
		c.TileWorkers = d.TileWorkers
	}
	if c.TileMaxZoom <= 0 {
		c.TileMaxZoom = d.TileMaxZoom
	}
	if c.FitMaxZoom <= 0 {
		c.FitMaxZoom = d.FitMaxZoom
	}
	if c.ResizeDelay <= 0 {
		c.ResizeDelay = d.ResizeDelay
	}
	if c.TileURL == "" {
		c.TilesEnabled = false
	}
	return c
}

