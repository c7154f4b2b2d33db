package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/brightsteps/site/internal/content"
	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader prepares viper with the defaults. When configFile is empty the config is searched for
// under $XDG_CONFIG_HOME/brightsteps and the working directory.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("start_view", "home")
	loader.SetDefault("debug", false)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("fps", 60)
	loader.SetDefault("mouse", true)
	loader.SetDefault("alt_screen", true)
	loader.SetDefault("smooth_scroll", true)
	loader.SetDefault("scroll_threshold", 200)
	loader.SetDefault("line_height_px", 20)
	loader.SetDefault("menu_breakpoint", 100)
	loader.SetDefault("glamour_style", "dark")
	loader.SetDefault("carousel.period", "5s")
	loader.SetDefault("carousel.reset_on_select", false)
	loader.SetDefault("contact.phone", content.DefaultContact.Phone)
	loader.SetDefault("contact.email", content.DefaultContact.Email)
	loader.SetDefault("contact.careers_email", content.DefaultContact.CareersEmail)
	loader.SetDefault("contact.address", content.DefaultContact.Address)
	loader.SetDefault("contact.map_url", content.DefaultContact.MapURL)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(envReplacer)
	loader.AutomaticEnv()

	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}

	return &loader
}

// Watch reloads the config on external edits and publishes the result on the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

// Write stores config at path, refusing to overwrite an existing file.
func (cl *Loader) Write(config Config, path string) error {
	cl.Set("start_view", config.StartView.String())
	cl.Set("debug", config.Debug)
	cl.Set("log_level", config.LogLevel)
	cl.Set("fps", config.FPS)
	cl.Set("mouse", config.Mouse)
	cl.Set("alt_screen", config.AltScreen)
	cl.Set("smooth_scroll", config.SmoothScroll)
	cl.Set("scroll_threshold", config.ScrollThreshold)
	cl.Set("line_height_px", config.LineHeightPx)
	cl.Set("menu_breakpoint", config.MenuBreakpoint)
	cl.Set("glamour_style", config.GlamourStyle)
	cl.Set("carousel.period", config.Carousel.Period.String())
	cl.Set("carousel.reset_on_select", config.Carousel.ResetOnSelect)
	cl.Set("contact.phone", config.Contact.Phone)
	cl.Set("contact.email", config.Contact.Email)
	cl.Set("contact.careers_email", config.Contact.CareersEmail)
	cl.Set("contact.address", config.Contact.Address)
	cl.Set("contact.map_url", config.Contact.MapURL)

	if err := cl.SafeWriteConfigAs(path); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file if one exists and decodes the merged result. A missing file is not an
// error, the defaults apply.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
