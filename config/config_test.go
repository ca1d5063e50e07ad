// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"akhil.cc/wikiscope/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "Hello, [[World]]!", cfg.Seed)
	assert.Equal(t, "", cfg.StateFile)
	assert.Equal(t, int8(0), cfg.LogLevel)
	assert.Equal(t, config.Live{Width: 80, InputHeight: 8}, cfg.Live)
	assert.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMerges(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "seed: \"== Hi ==\"\nlive:\n  width: 120\n"))
	require.NoError(t, err)
	assert.Equal(t, "== Hi ==", cfg.Seed)
	assert.Equal(t, 120, cfg.Live.Width)
	assert.Equal(t, 8, cfg.Live.InputHeight)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))

	_, err = config.Load(writeConfig(t, "live: [\n"))
	assert.ErrorContains(t, err, "decode")

	_, err = config.Load(writeConfig(t, "live:\n  input_height: 0\n"))
	assert.ErrorContains(t, err, "input_height")
}

func TestMarshal(t *testing.T) {
	cfg := config.Default()
	cfg.StateFile = "/tmp/state.yaml"
	data, err := cfg.Marshal()
	require.NoError(t, err)
	var back config.Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, cfg, back)
}

func TestStatePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	assert.Equal(t, "/var/state/wikiscope/state.yaml", config.Default().StatePath())

	cfg := config.Default()
	cfg.StateFile = "here.yaml"
	assert.Equal(t, "here.yaml", cfg.StatePath())
}
