package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value kept",
			args:         []string{"-a", ":8080", "-d", "postgres://localhost/db"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", ":8080"},
		},
		{
			name:         "equals form kept",
			args:         []string{"--config=server.json", "-a", ":8080"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=server.json"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "extra"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next flag is not consumed as a value",
			args:         []string{"-c", "-a"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-c", "-a"},
		},
		{
			name:         "several allowed flags keep their order",
			args:         []string{"-a", ":9090", "-s", "topsecret", "--other", "x"},
			allowedFlags: []string{"-a", "-s"},
			want:         []string{"-a", ":9090", "-s", "topsecret"},
		},
		{
			name:         "repeated flag preserved",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty input",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"server", "-c", "/etc/vibesbook/server.json"}
		assert.Equal(t, "/etc/vibesbook/server.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"server", "-config", "/etc/vibesbook/alt.json"}
		assert.Equal(t, "/etc/vibesbook/alt.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"server", "-a", ":8080"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last one wins", func(t *testing.T) {
		os.Args = []string{"server", "-c", "/tmp/1.json", "-config", "/tmp/2.json"}
		assert.Equal(t, "/tmp/2.json", JsonConfigFlags())
	})
}
