package app

import (
	"os"
	"testing"

	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/hcl"
	"github.com/vk/tlvconfig/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. A nil loader
// selects the HCL loader.
func SetupAppTest(t *testing.T, cfg Config, loader config.Loader) (*App, *testutil.SafeBuffer) {
	t.Helper()

	if loader == nil {
		loader = hcl.NewLoader()
	}
	cfg.LogLevel = "debug"
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:0"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	logBuffer := &testutil.SafeBuffer{}
	testApp := NewApp(logBuffer, validated, loader)

	t.Cleanup(func() {
		if os.Getenv(testutil.LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
