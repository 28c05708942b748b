package api

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferien-api/schulferien/pkg/defaults"
	"github.com/ferien-api/schulferien/pkg/query"
)

// Test Coverage Note:
// Serve() blocks until shutdown, so these tests cover the pieces it is
// composed of: options, store selection and server construction.

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "ferienapi" {
		t.Errorf("name = %q, want %q", name, "ferienapi")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	// Verify buildtime variables exist (they may have default values)
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

func TestOptionsFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		dataDir string
		maxAge  string
		wantDir string
		wantAge time.Duration
	}{
		{"defaults", "", "", "", defaults.CacheMaxAge},
		{"data dir", "/srv/ferien", "", "/srv/ferien", defaults.CacheMaxAge},
		{"max age", "", "60", "", time.Minute},
		{"zero max age", "", "0", "", 0},
		{"invalid max age", "", "soon", "", defaults.CacheMaxAge},
		{"negative max age", "", "-5", "", defaults.CacheMaxAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.dataDir)
			t.Setenv(EnvCacheMaxAge, tt.maxAge)

			opts := OptionsFromEnv()
			if opts.DataDir != tt.wantDir {
				t.Errorf("DataDir = %q, want %q", opts.DataDir, tt.wantDir)
			}
			if opts.CacheMaxAge != tt.wantAge {
				t.Errorf("CacheMaxAge = %v, want %v", opts.CacheMaxAge, tt.wantAge)
			}
		})
	}
}

func TestOpenStore(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		st, err := OpenStore("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(st.AvailableYears()) == 0 {
			t.Error("expected embedded years")
		}
	})

	t.Run("directory", func(t *testing.T) {
		dir := t.TempDir()
		data := `[{"start":"2030-07-29T00:00Z","end":"2030-09-09T00:00Z","year":2030,"stateCode":"BY","name":"sommerferien","slug":"sommerferien-2030-BY"}]`
		if err := os.WriteFile(filepath.Join(dir, "2030.json"), []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}

		st, err := OpenStore(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := st.AvailableYears(); len(got) != 1 || got[0] != 2030 {
			t.Errorf("years = %v, want [2030]", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := OpenStore(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func TestNewServer(t *testing.T) {
	s, err := NewServer(Options{CacheMaxAge: time.Minute, Port: 18181})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s == nil {
		t.Fatal("expected server")
	}

	if _, err := NewServer(Options{DataDir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("expected error for missing data directory")
	}
}

// TestRouteConfiguration verifies that the query routes are set up
func TestRouteConfiguration(t *testing.T) {
	st, err := OpenStore("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	routes := query.NewService(st).Routes()

	expected := []string{
		query.RouteByYear,
		query.RouteByYearState,
		query.RouteCurrent,
		query.RouteNext,
		query.RouteOnDate,
		query.RouteSearch,
		query.RouteStats,
		query.RouteCompare,
		query.RouteYears,
		query.RoutePublicHolidays,
	}

	for _, pattern := range expected {
		if handler, exists := routes[pattern]; !exists {
			t.Errorf("expected %s route to exist", pattern)
		} else if handler == nil {
			t.Errorf("expected %s handler to be non-nil", pattern)
		}
	}

	// Verify no extra routes
	if len(routes) != len(expected) {
		t.Errorf("expected exactly %d routes, got %d", len(expected), len(routes))
	}
}
