package config

import (
	"testing"

	"github.com/hogwarts-cloud/sandboxctl/internal/writer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected Config
		wantErr  bool
	}{
		{
			name: "defaults",
			args: nil,
			expected: Config{
				Input:    "setup.properties",
				Output:   "./sandbox.cfg",
				Format:   writer.FormatJSON,
				LogLevel: logrus.InfoLevel,
			},
		},
		{
			name: "short flags",
			args: []string{"-i", "env/advanced.properties", "-o", "out/sandbox.yaml"},
			expected: Config{
				Input:    "env/advanced.properties",
				Output:   "out/sandbox.yaml",
				Format:   writer.FormatYAML,
				LogLevel: logrus.InfoLevel,
			},
		},
		{
			name: "long flags",
			args: []string{"--input=setup.ini", "--output=-", "--format=yaml", "--log-level=debug"},
			expected: Config{
				Input:    "setup.ini",
				Output:   "-",
				Format:   writer.FormatYAML,
				LogLevel: logrus.DebugLevel,
			},
		},
		{
			name:    "unknown format",
			args:    []string{"--format=xml"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			args:    []string{"--log-level=loud"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("sandboxctl", pflag.ContinueOnError)
			RegisterFlags(flags)
			require.NoError(t, flags.Parse(tc.args))

			actual, err := Load(flags)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}
