package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	zone "github.com/lrstanley/bubblezone"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"padelmatch/internal/config"
	"padelmatch/internal/layout"
	"padelmatch/internal/logging"
	"padelmatch/internal/mapkit"
	"padelmatch/internal/mapsync"
	"padelmatch/internal/tui"
	"padelmatch/internal/venue"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "padelmatch",
	Short: "Find padel courts and players in Denmark",
	Args:  cobra.NoArgs,
	RunE:  run,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.padelmatch.yaml)")

	rootCmd.Flags().StringP("venues", "f", "", "CSV file with venues")
	rootCmd.Flags().String("log-file", "", "log file")
	rootCmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("no-tiles", false, "draw the coastline only")
	for key, flag := range map[string]string{
		config.KeyVenuesFile: "venues",
		config.KeyLogFile:    "log-file",
		config.KeyLogLevel:   "log-level",
	} {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads .env, the config file and PADELMATCH_* variables.
func initConfig() {
	_ = godotenv.Load(".env")
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".padelmatch")
	}

	viper.SetEnvPrefix("padelmatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map.tiles.url -> PADELMATCH_MAP_TILES_URL
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "config:", err)
		}
	}
}

func run(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()
	log, closer, err := logging.Open(config.LogFile(v), config.LogLevel(v))
	if err != nil {
		return err
	}
	defer closer.Close()
	log.Info().Str("config", v.ConfigFileUsed()).Msg("starting")

	venues, err := loadVenues(v, log)
	if err != nil {
		return err
	}

	zones := zone.New()
	defer zones.Close()
	window := layout.NewWindow()
	pane := layout.NewPane()

	loader := mapkit.NewLoader(mapkit.DefaultHead, mapkit.SourceFetcher{}, config.KitSources(v), log)
	ecfg := config.Engine(v)
	if noTiles, _ := cmd.Flags().GetBool("no-tiles"); noTiles {
		ecfg.TilesEnabled = false
	}
	ecfg.Zones = zones
	engine := mapsync.New(loader, window, pane, ecfg, log)

	m := tui.New(tui.Options{
		Venues:  venues,
		Players: venue.Players(),
		Engine:  engine,
		Window:  window,
		Pane:    pane,
		Zones:   zones,
		Log:     log,
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	engine.Unmount()
	if err != nil {
		log.Error().Err(err).Msg("program exited")
		return err
	}
	log.Info().Msg("bye")
	return nil
}

func loadVenues(v *viper.Viper, log zerolog.Logger) ([]venue.Venue, error) {
	if !config.HasVenuesFile(v) {
		return venue.Fixtures(), nil
	}
	path := config.VenuesFile(v)
	vs, err := venue.LoadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}
	log.Info().Str("file", path).Int("venues", len(vs)).Msg("venues loaded")
	return vs, nil
}
