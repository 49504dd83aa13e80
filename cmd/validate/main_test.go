package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRegion = `id: frozen_north
name: The Frozen North
arc: frontier
locations:
  - id: alder_camp
    name: Alder Camp
    type: settlement
    danger_level: 1
    access: accessible
  - id: wyrm_lair
    name: Wyrm Lair
    type: boss
    is_boss: true
    danger_level: 7
    access: locked
    guardian:
      name: Frost Wyrm
      hp: 60
      ac: 16
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	color.Disable()

	tests := []struct {
		name     string
		file     string
		content  string
		wantCode int
		wantOut  []string
	}{
		{
			name:     "valid yaml",
			file:     "frozen_north.yaml",
			content:  validRegion,
			wantCode: 0,
			wantOut:  []string{"OK", "The Frozen North: 2 locations, 0/2 explored", "All region files are valid!"},
		},
		{
			name:     "bad filename",
			file:     "Frozen-North.yaml",
			content:  validRegion,
			wantCode: 1,
			wantOut:  []string{"FAIL", "lowercase snake_case"},
		},
		{
			name:     "wrong extension",
			file:     "frozen_north.txt",
			content:  validRegion,
			wantCode: 1,
			wantOut:  []string{"must have a .json, .yaml or .yml extension"},
		},
		{
			name:     "unknown json field",
			file:     "north.json",
			content:  `{"id": "north", "name": "North", "arc": "frontier", "weather": "snow"}`,
			wantCode: 1,
			wantOut:  []string{"failed strict unmarshaling"},
		},
		{
			name: "unknown location field",
			file: "north.json",
			content: `{"id": "north", "name": "North", "arc": "frontier", "locations": [
				{"id": "camp", "name": "Camp", "type": "settlement", "danger_level": 1, "access": "accessible", "special_featur": "typo"}
			]}`,
			wantCode: 1,
			wantOut:  []string{"failed strict unmarshaling", "special_featur"},
		},
		{
			name: "unknown yaml location field",
			file: "north.yaml",
			content: `id: north
name: North
arc: frontier
locations:
  - id: camp
    name: Camp
    type: settlement
    danger_level: 1
    access: accessible
    merchant: true
`,
			wantCode: 1,
			wantOut:  []string{"failed strict unmarshaling", "merchant"},
		},
		{
			name: "rule violations",
			file: "north.json",
			content: `{"id": "North", "name": "North", "arc": "sideways", "locations": [
				{"id": "camp", "name": "Camp", "type": "settlement", "danger_level": 9, "access": "locked"}
			]}`,
			wantCode: 1,
			wantOut:  []string{"region ID 'North' should be lowercase snake_case", "unknown arc", "nothing can be drawn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			var out bytes.Buffer
			code := run([]string{path}, &out)
			assert.Equal(t, tt.wantCode, code, out.String())
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, run(nil, &out))
	assert.Contains(t, out.String(), "Usage")
}

func TestRun_MissingFile(t *testing.T) {
	color.Disable()
	var out bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.yaml")}, &out)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "failed to read file")
	assert.Contains(t, out.String(), "1 of 1 region files failed validation")
}
