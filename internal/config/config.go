package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "brightsteps"
	DefaultConfigName = "brightsteps"
	DefaultLogName    = "brightsteps.log"
	EnvPrefix         = "brightsteps"
)

type Config struct {
	// StartView is the view shown when the session starts. The shell still initializes on home
	// and transitions to it during startup.
	StartView nav.View `mapstructure:"start_view"`
	Debug     bool     `mapstructure:"debug"`
	LogLevel  string   `mapstructure:"log_level"`
	FPS       int      `mapstructure:"fps"`
	Mouse     bool     `mapstructure:"mouse"`
	AltScreen bool     `mapstructure:"alt_screen"`
	// SmoothScroll animates the scroll-to-top performed on every transition.
	SmoothScroll bool `mapstructure:"smooth_scroll"`
	// ScrollThreshold is expressed in pixels; terminal lines are converted using LineHeightPx.
	ScrollThreshold int      `mapstructure:"scroll_threshold"`
	LineHeightPx    int      `mapstructure:"line_height_px"`
	MenuBreakpoint  int      `mapstructure:"menu_breakpoint"`
	GlamourStyle    string   `mapstructure:"glamour_style"`
	Carousel        Carousel `mapstructure:"carousel"`
	Contact         Contact  `mapstructure:"contact"`
}

type Carousel struct {
	Period        time.Duration `mapstructure:"period"`
	ResetOnSelect bool          `mapstructure:"reset_on_select"`
}

type Contact struct {
	Phone        string `mapstructure:"phone"`
	Email        string `mapstructure:"email"`
	CareersEmail string `mapstructure:"careers_email"`
	Address      string `mapstructure:"address"`
	MapURL       string `mapstructure:"map_url"`
}

// Details returns the configured contact details, with blank fields taken from the built in ones.
func (c Contact) Details() content.Contact {
	details := content.Contact{
		Phone:        c.Phone,
		Email:        c.Email,
		CareersEmail: c.CareersEmail,
		Address:      c.Address,
		MapURL:       c.MapURL,
	}

	if details.Phone == "" {
		details.Phone = content.DefaultContact.Phone
	}
	if details.Email == "" {
		details.Email = content.DefaultContact.Email
	}
	if details.CareersEmail == "" {
		details.CareersEmail = content.DefaultContact.CareersEmail
	}
	if details.Address == "" {
		details.Address = content.DefaultContact.Address
	}
	if details.MapURL == "" {
		details.MapURL = content.DefaultContact.MapURL
	}

	return details
}

// ScrollOffsetPx converts a viewport line offset into the pixel unit of ScrollThreshold.
func (c Config) ScrollOffsetPx(lines int) int {
	return lines * max(c.LineHeightPx, 1)
}

// Level maps LogLevel onto slog, with Debug taking precedence.
func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}

var envReplacer = strings.NewReplacer(".", "_", "-", "_")
