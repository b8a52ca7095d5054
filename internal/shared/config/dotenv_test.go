package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line     string
		key, val string
		ok       bool
	}{
		{line: "PORT=9090", key: "PORT", val: "9090", ok: true},
		{line: "export LLM_PROVIDER=openai", key: "LLM_PROVIDER", val: "openai", ok: true},
		{line: `AI_API_KEY="abc # not a comment"`, key: "AI_API_KEY", val: "abc # not a comment", ok: true},
		{line: "LLM_MODEL='gpt-4o-mini'", key: "LLM_MODEL", val: "gpt-4o-mini", ok: true},
		{line: "ENV=prod # deployed", key: "ENV", val: "prod", ok: true},
		{line: "EMPTY=", key: "EMPTY", val: "", ok: true},
		{line: "# comment"},
		{line: "   "},
		{line: "NOEQUALS"},
		{line: "BAD KEY=1"},
	}
	for _, tc := range cases {
		key, val, ok := parseEnvLine(tc.line)
		if ok != tc.ok || key != tc.key || val != tc.val {
			t.Errorf("parseEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)", tc.line, key, val, ok, tc.key, tc.val, tc.ok)
		}
	}
}

func TestLoadEnvFilesKeepsProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "TOS_DOTENV_SET=from-file\nTOS_DOTENV_NEW=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("TOS_DOTENV_SET", "from-env")
	t.Setenv("TOS_DOTENV_NEW", "")
	if err := os.Unsetenv("TOS_DOTENV_NEW"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	loadEnvFiles(filepath.Join(t.TempDir(), "missing.env"), path)

	if got := os.Getenv("TOS_DOTENV_SET"); got != "from-env" {
		t.Fatalf("process env overwritten: %q", got)
	}
	if got := os.Getenv("TOS_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
}
