// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/ferien-api/schulferien/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
			wantErr:    false,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
			wantErr:    false,
		},
		{
			name:       "upper case format",
			format:     "JSON",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:       "invalid format xml",
			format:     "xml",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "invalid format csv",
			format:     "csv",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "empty format",
			format:     "",
			wantFormat: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a minimal CLI command with the format flag
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			// Run the command with the test format
			err := cmd.Run(context.Background(), []string{"test"})
			if err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestCommandLister(_ *testing.T) {
	commandLister(context.Background(), nil)

	cmd := &cli.Command{Name: "test"}
	commandLister(context.Background(), cmd)

	rootCmd := &cli.Command{
		Name: "root",
		Commands: []*cli.Command{
			{Name: "visible1", Hidden: false},
			{Name: "hidden", Hidden: true},
			{Name: "visible2", Hidden: false},
		},
	}
	commandLister(context.Background(), rootCmd)
}

func hasName(flag cli.Flag, name string) bool {
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd()

	want := map[string][]string{
		"years":           {"output", "format"},
		"holidays":        {"from", "to", "type", "states", "fields", "output", "format"},
		"current":         {"states", "fields", "output", "format"},
		"next":            {"states", "fields", "output", "format"},
		"on":              {"states", "fields", "output", "format"},
		"search":          {"year", "states", "fields", "output", "format"},
		"stats":           {"output", "format"},
		"compare":         {"output", "format"},
		"public-holidays": {"states", "output", "format"},
		"serve":           {"port", "cache-max-age"},
	}

	if len(root.Commands) != len(want) {
		t.Errorf("expected %d commands, got %d", len(want), len(root.Commands))
	}

	for _, cmd := range root.Commands {
		flags, ok := want[cmd.Name]
		if !ok {
			t.Errorf("unexpected command %q", cmd.Name)
			continue
		}
		if cmd.Action == nil {
			t.Errorf("command %q: Action should not be nil", cmd.Name)
		}
		for _, flagName := range flags {
			found := false
			for _, flag := range cmd.Flags {
				if hasName(flag, flagName) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("command %q: flag %q not found", cmd.Name, flagName)
			}
		}
	}

	for _, flagName := range []string{"log-level", "data-dir"} {
		found := false
		for _, flag := range root.Flags {
			if hasName(flag, flagName) {
				found = true
			}
		}
		if !found {
			t.Errorf("root flag %q not found", flagName)
		}
	}
}
