package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"PoliceDigest/internal/domain"
)

func writeConfig(t *testing.T) (path, outDir string) {
	t.Helper()
	dir := t.TempDir()
	outDir = filepath.Join(dir, "reports")
	path = filepath.Join(dir, "config.yaml")
	body := strings.Join([]string{
		"logging:",
		"  level: error",
		"  format: json",
		"report:",
		"  outputDir: " + outDir,
		"storage:",
		"  driver: sqlite",
		"  dsn: " + filepath.Join(dir, "archive.db"),
	}, "\n")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600)).Required()
	return path, outDir
}

func TestExportCommand(t *testing.T) {
	cfgPath, outDir := writeConfig(t)

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"policedigest", "--config", cfgPath, "export"})
	gt.NoError(t, err).Required()

	path := strings.TrimSpace(out.String())
	gt.Equal(t, filepath.Dir(path), outDir)
	gt.True(t, strings.HasSuffix(path, time.Now().UTC().Format(domain.DateLayout)+".pdf"))

	raw, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	gt.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestExportCommandOutOverride(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	alt := filepath.Join(t.TempDir(), "alt")

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"policedigest", "--config", cfgPath, "export", "--out", alt})
	gt.NoError(t, err).Required()
	gt.Equal(t, filepath.Dir(strings.TrimSpace(out.String())), alt)
}

func TestDigestCommand(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	day := time.Now().UTC().AddDate(0, 0, -2).Format(domain.DateLayout)

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"policedigest", "--config", cfgPath, "digest", "--date", day})
	gt.NoError(t, err).Required()

	var got digestOutput
	gt.NoError(t, json.Unmarshal(out.Bytes(), &got)).Required()
	gt.Equal(t, got.Digest.Date, day)
	gt.Equal(t, got.Overview.TotalArticles, got.Digest.TotalArticles)
	gt.Equal(t, len(got.Districts), len(got.Digest.Districts))
}

func TestRejectsFutureDate(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	future := time.Now().UTC().AddDate(0, 0, 2).Format(domain.DateLayout)

	err := newCommand(&bytes.Buffer{}).Run(context.Background(), []string{"policedigest", "--config", cfgPath, "digest", "--date", future})
	gt.Error(t, err)
}
