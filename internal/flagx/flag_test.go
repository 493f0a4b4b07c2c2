package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		valueFlags []string
		boolFlags  []string
		want       []string
	}{
		{
			name:       "value flag with separate value",
			args:       []string{"-a", ":50051", "-x", "zap"},
			valueFlags: []string{"-a"},
			want:       []string{"-a", ":50051"},
		},
		{
			name:       "equals form",
			args:       []string{"--config=alt.json", "-a", ":1"},
			valueFlags: []string{"--config"},
			want:       []string{"--config=alt.json"},
		},
		{
			name:       "unknown flags and positionals dropped",
			args:       []string{"-z", "1", "--y=2", "positional"},
			valueFlags: []string{"-a"},
			want:       []string{},
		},
		{
			name:       "value flag at the end keeps no value",
			args:       []string{"-w"},
			valueFlags: []string{"-w"},
			want:       []string{"-w"},
		},
		{
			name:       "value flag followed by another flag",
			args:       []string{"-w", "-q", "20"},
			valueFlags: []string{"-w", "-q"},
			want:       []string{"-w", "-q", "20"},
		},
		{
			name:       "bool flag does not swallow the next argument",
			args:       []string{"-e", "positional", "-a", ":9090"},
			valueFlags: []string{"-a"},
			boolFlags:  []string{"-e"},
			want:       []string{"-e", "-a", ":9090"},
		},
		{
			name:       "bool flag with explicit value",
			args:       []string{"-e=false"},
			boolFlags:  []string{"-e"},
			want:       []string{"-e=false"},
		},
		{
			name: "empty args",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.valueFlags, tt.boolFlags...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigPath(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"server", "-a", ":1", "-c", "cfg.json"}
	assert.Equal(t, "cfg.json", ConfigPath())

	os.Args = []string{"server", "-config=other.json"}
	assert.Equal(t, "other.json", ConfigPath())

	os.Args = []string{"server", "-a", ":1"}
	assert.Equal(t, "", ConfigPath())
}
