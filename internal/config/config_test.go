package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/m-mizutani/gt"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		configPathEnv, logLevelEnv, logFormatEnv, outputDirEnv, databaseDriverEnv,
		databaseDSNEnv, telegramTokenEnv, telegramChatIDEnv, serverAddrEnv,
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600)).Required()
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load("")
	gt.Equal(t, cfg.Logging.Level, "info")
	gt.Equal(t, cfg.Processing.Source, "mock")
	gt.Equal(t, cfg.Processing.StageDelay, time.Second)
	gt.Equal(t, cfg.Storage.Driver, "sqlite")
	gt.Equal(t, cfg.Report.FilePrefix, "AP_State_Police_Report")
	gt.Equal(t, cfg.Scheduler.Location(), time.UTC)
	gt.False(t, cfg.Notifications.Telegram.Enabled())
}

func TestLoadMergesFile(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, `
report:
  organization: Metro Police
  outputDir: /var/reports
processing:
  stageDelay: 250ms
scheduler:
  cronExpression: "30 5 * * *"
  timezone: Asia/Kolkata
notifications:
  telegram:
    botToken: token
    chatId: "42"
`)

	cfg := Load(path)
	gt.Equal(t, cfg.Report.Organization, "Metro Police")
	gt.Equal(t, cfg.Report.OutputDir, "/var/reports")
	gt.Equal(t, cfg.Report.Subtitle, "Daily News Intelligence Digest")
	gt.Equal(t, cfg.Processing.StageDelay, 250*time.Millisecond)
	gt.Equal(t, cfg.Processing.Source, "mock")
	gt.Equal(t, cfg.Scheduler.CronExpression, "30 5 * * *")
	gt.Equal(t, cfg.Scheduler.Location().String(), "Asia/Kolkata")
	gt.True(t, cfg.Notifications.Telegram.Enabled())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "server:\n  addr: \":9000\"\nlogging:\n  level: warn\n")
	t.Setenv(configPathEnv, path)
	t.Setenv(serverAddrEnv, ":7000")
	t.Setenv(databaseDriverEnv, "postgres")
	t.Setenv(databaseDSNEnv, "postgres://localhost/digest")

	cfg := Load("")
	gt.Equal(t, cfg.Server.Addr, ":7000")
	gt.Equal(t, cfg.Logging.Level, "warn")
	gt.Equal(t, cfg.Storage.Driver, "postgres")
	gt.Equal(t, cfg.Storage.DSN, "postgres://localhost/digest")
}

func TestLoadFallsBackOnBadInput(t *testing.T) {
	clearEnv(t)

	cfg := Load(writeFile(t, "report: [unterminated"))
	gt.Equal(t, cfg.Report.Organization, "AP State Police")

	cfg = Load(writeFile(t, "scheduler:\n  timezone: Mars/Olympus\n"))
	gt.Equal(t, cfg.Scheduler.Location(), time.UTC)

	cfg = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	gt.Equal(t, cfg.Server.Addr, ":8080")
}
