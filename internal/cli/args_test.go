package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"no negatives", []string{"2", "10"}, []string{"2", "10"}},
		{"negative exponent", []string{"2", "-1"}, []string{"--", "2", "-1"}},
		{"negative base", []string{"-2", "3"}, []string{"--", "-2", "3"}},
		{"bool flag", []string{"--debug", "-2", "3"}, []string{"--debug", "--", "-2", "3"}},
		{"flag with value", []string{"--max-exponent", "5", "2", "-3"}, []string{"--max-exponent", "5", "--", "2", "-3"}},
		{"inline flag value", []string{"2", "--max-exponent=5", "-3"}, []string{"--max-exponent=5", "--", "2", "-3"}},
		{"persistent flag with value", []string{"-3", "--config", "c.yaml", "2"}, []string{"--config", "c.yaml", "--", "-3", "2"}},
		{"help flag", []string{"-h", "2", "-1"}, []string{"-h", "--", "2", "-1"}},
		{"existing terminator", []string{"--", "-2", "3"}, []string{"--", "-2", "3"}},
		{"negative after terminator only", []string{"2", "--", "-3"}, []string{"2", "--", "-3"}},
		{"subcommand stays in front", []string{"version", "-1"}, []string{"version", "--", "-1"}},
		{"nested subcommand", []string{"--debug", "config", "init", "-1"}, []string{"--debug", "config", "init", "--", "-1"}},
		{"subcommand flag with value", []string{"config", "init", "--config", "c.yaml", "-1"}, []string{"config", "init", "--config", "c.yaml", "--", "-1"}},
		{"subcommand name as later positional", []string{"2", "version", "-1"}, []string{"--", "2", "version", "-1"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := normalizeArgs(newRootCmd(), tt.in)
			require.NotNil(t, got)
			require.Equal(t, tt.want, got)
		})
	}
}
