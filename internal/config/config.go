package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone   = "UTC"
	configPathEnv     = "POLICE_DIGEST_CONFIG"
	logLevelEnv       = "POLICE_DIGEST_LOG_LEVEL"
	logFormatEnv      = "POLICE_DIGEST_LOG_FORMAT"
	outputDirEnv      = "POLICE_DIGEST_OUTPUT_DIR"
	databaseDriverEnv = "DATABASE_DRIVER"
	databaseDSNEnv    = "DATABASE_DSN"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
	serverAddrEnv     = "SERVER_ADDR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Report        ReportConfig       `yaml:"report"`
	Processing    ProcessingConfig   `yaml:"processing"`
	Storage       StorageConfig      `yaml:"storage"`
	Server        ServerConfig       `yaml:"server"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ReportConfig carries report branding and where exports are written.
type ReportConfig struct {
	Organization   string `yaml:"organization"`
	Subtitle       string `yaml:"subtitle"`
	Classification string `yaml:"classification"`
	FilePrefix     string `yaml:"filePrefix"`
	PreparedBy     string `yaml:"preparedBy"`
	OutputDir      string `yaml:"outputDir"`
}

// ProcessingConfig controls the simulated processing sequence.
type ProcessingConfig struct {
	Source     string        `yaml:"source"`
	StageDelay time.Duration `yaml:"stageDelay"`
}

// StorageConfig describes the export archive database.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// ServerConfig is the HTTP listener of the dashboard API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SchedulerConfig defines when the daily export runs.
type SchedulerConfig struct {
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	return time.UTC
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Enabled reports whether both the token and the chat are set.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// Load reads .env and the YAML configuration (if present), then applies
// environment overrides. An empty path falls back to $POLICE_DIGEST_CONFIG.
func Load(path string) Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("config: cannot load .env", "error", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			slog.Warn("config: cannot read file, falling back to defaults", "path", path, "error", err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				slog.Warn("config: cannot parse file, falling back to defaults", "path", path, "error", err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	overrides := []struct {
		env    string
		target *string
	}{
		{logLevelEnv, &c.Logging.Level},
		{logFormatEnv, &c.Logging.Format},
		{outputDirEnv, &c.Report.OutputDir},
		{databaseDriverEnv, &c.Storage.Driver},
		{databaseDSNEnv, &c.Storage.DSN},
		{telegramTokenEnv, &c.Notifications.Telegram.BotToken},
		{telegramChatIDEnv, &c.Notifications.Telegram.ChatID},
		{serverAddrEnv, &c.Server.Addr},
	}

	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		slog.Warn("config: unknown timezone, reverting to default", "timezone", tz, "default", defaultTimezone)
		loc = time.UTC
	}
	c.Scheduler.location = loc
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeConfig(base, override Config) Config {
	setIf(&base.Logging.Level, override.Logging.Level)
	setIf(&base.Logging.Format, override.Logging.Format)

	setIf(&base.Report.Organization, override.Report.Organization)
	setIf(&base.Report.Subtitle, override.Report.Subtitle)
	setIf(&base.Report.Classification, override.Report.Classification)
	setIf(&base.Report.FilePrefix, override.Report.FilePrefix)
	setIf(&base.Report.PreparedBy, override.Report.PreparedBy)
	setIf(&base.Report.OutputDir, override.Report.OutputDir)

	setIf(&base.Processing.Source, override.Processing.Source)
	if override.Processing.StageDelay > 0 {
		base.Processing.StageDelay = override.Processing.StageDelay
	}

	if override.Storage.Driver != "" || override.Storage.DSN != "" {
		base.Storage = override.Storage
	}

	setIf(&base.Server.Addr, override.Server.Addr)

	setIf(&base.Scheduler.CronExpression, override.Scheduler.CronExpression)
	setIf(&base.Scheduler.Timezone, override.Scheduler.Timezone)

	setIf(&base.Notifications.Telegram.BotToken, override.Notifications.Telegram.BotToken)
	setIf(&base.Notifications.Telegram.ChatID, override.Notifications.Telegram.ChatID)

	return base
}

// Default is the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "auto"},
		Report: ReportConfig{
			Organization:   "AP State Police",
			Subtitle:       "Daily News Intelligence Digest",
			Classification: "RESTRICTED - FOR OFFICIAL USE ONLY",
			FilePrefix:     "AP_State_Police_Report",
			PreparedBy:     "Intelligence Analysis Cell",
			OutputDir:      "reports",
		},
		Processing: ProcessingConfig{Source: "mock", StageDelay: time.Second},
		Storage:    StorageConfig{Driver: "sqlite", DSN: "police-digest.db"},
		Server:     ServerConfig{Addr: ":8080"},
		Scheduler:  SchedulerConfig{CronExpression: "0 6 * * *", Timezone: defaultTimezone, location: time.UTC},
	}
}
