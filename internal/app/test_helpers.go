package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/orgmeta/internal/config"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// TestConfig returns the default configuration rooted at dir.
func TestConfig(t *testing.T, dir string) *config.Config {
	t.Helper()

	cfg, err := config.FromEnvironment(map[string]string{})
	require.NoError(t, err)

	cfg.ContributorsPattern = filepath.Join(dir, cfg.ContributorsPattern)
	cfg.TeamsPattern = filepath.Join(dir, cfg.TeamsPattern)
	cfg.ContributorSchema = filepath.Join(dir, cfg.ContributorSchema)
	cfg.TeamSchema = filepath.Join(dir, cfg.TeamSchema)
	cfg.LogLevel = "debug"
	return cfg
}

// SetupAppTest creates a new app instance for testing. It returns the app
// together with its output and log buffers.
func SetupAppTest(t *testing.T, cfg *config.Config) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	testApp := NewApp(out, logs, cfg)

	t.Cleanup(func() {
		if os.Getenv("ORGMETA_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
