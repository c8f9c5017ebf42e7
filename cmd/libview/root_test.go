package main

import (
	"testing"

	"github.com/user-none/libview/standalone"
)

func TestFlagsExist(t *testing.T) {
	for _, name := range []string{"data-dir", "library", "view", "policy"} {
		flag := rootCmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("--%s flag not found", name)
		}
		if flag.DefValue != "" {
			t.Errorf("--%s default = %q, want empty", name, flag.DefValue)
		}
	}
	if got := rootCmd.Flags().Lookup("library").Shorthand; got != "l" {
		t.Errorf("--library shorthand = %q, want %q", got, "l")
	}
}

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		opts    standalone.Options
		wantErr bool
	}{
		{"defaults", standalone.Options{}, false},
		{"list multi", standalone.Options{ViewMode: "list", OpenPolicy: "multi"}, false},
		{"icon single", standalone.Options{ViewMode: "icon", OpenPolicy: "single"}, false},
		{"bad view", standalone.Options{ViewMode: "grid"}, true},
		{"bad policy", standalone.Options{OpenPolicy: "many"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orig := opts
			defer func() { opts = orig }()

			opts = tc.opts
			err := validateFlags(rootCmd, nil)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateFlags() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestVersionTemplate(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	version, commit, date = "1.2.0", "none", "unknown"
	if got := versionTemplate(); got != "libview 1.2.0\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	commit, date = "abc123", "2026-01-01"
	want := "libview 1.2.0\n  commit: abc123\n  built:  2026-01-01\n"
	if got := versionTemplate(); got != want {
		t.Errorf("versionTemplate() = %q, want %q", got, want)
	}
}
