package flagx

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

var cliFlags = []string{"-a", "-t", "-d", "-l"}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "config flag stripped from client flags",
			args:    []string{"-c", "cos.yaml", "-a", "http://localhost:8001/api", "-l", "debug"},
			allowed: cliFlags,
			want:    []string{"-a", "http://localhost:8001/api", "-l", "debug"},
		},
		{
			name:    "equals form",
			args:    []string{"-t=10", "-config=cos.json"},
			allowed: cliFlags,
			want:    []string{"-t=10"},
		},
		{
			name:    "dangling flag kept without value",
			args:    []string{"-d"},
			allowed: cliFlags,
			want:    []string{"-d"},
		},
		{
			name:    "next flag is not swallowed as a value",
			args:    []string{"-d", "-l", "warn"},
			allowed: cliFlags,
			want:    []string{"-d", "-l", "warn"},
		},
		{
			name:    "equals value may start with a dash",
			args:    []string{"-config=-odd.json"},
			allowed: []string{"-config"},
			want:    []string{"-config=-odd.json"},
		},
		{
			name:    "positional arguments dropped",
			args:    []string{"login", "-x", "1"},
			allowed: cliFlags,
			want:    []string{},
		},
		{
			name:    "repeats preserved in order",
			args:    []string{"-a", "http://one", "-a", "http://two"},
			allowed: cliFlags,
			want:    []string{"-a", "http://one", "-a", "http://two"},
		},
		{
			name:    "nil args",
			allowed: cliFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestFilterArgs_OnlyAllowedFlagsSurvive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	tokens := []string{"-a", "-c", "-t", "-x", "-l=info", "-c=cos.yaml", "value", "http://h/api", "10"}

	properties.Property("every kept flag is allowed and output is a subsequence", prop.ForAll(
		func(picks []int) bool {
			args := make([]string, len(picks))
			for i, p := range picks {
				args[i] = tokens[p]
			}
			got := FilterArgs(args, cliFlags)

			j := 0
			for _, g := range got {
				for j < len(args) && args[j] != g {
					j++
				}
				if j == len(args) {
					return false
				}
				j++
				if strings.HasPrefix(g, "-") {
					name, _, _ := strings.Cut(g, "=")
					if name != "-a" && name != "-t" && name != "-d" && name != "-l" {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(tokens)-1)),
	))

	properties.TestingRun(t)
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "cos.yaml"}, want: "cos.yaml"},
		{name: "long", args: []string{"-config", "/etc/cos.json"}, want: "/etc/cos.json"},
		{name: "equals among client flags", args: []string{"-a", "http://x/api", "-config=cos.yml"}, want: "cos.yml"},
		{name: "last wins", args: []string{"-c", "one.json", "-config", "two.json"}, want: "two.json"},
		{name: "absent", args: []string{"-l", "debug"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
