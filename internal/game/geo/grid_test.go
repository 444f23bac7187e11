package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFree_NilMap(t *testing.T) {
	if !IsFree(nil, -100, 5000) {
		t.Error("IsFree(nil) = false, want every tile free")
	}
}

func TestGrid_IsColliding(t *testing.T) {
	// 3x2 grid, blocked tiles (1,0) and (2,1).
	g, err := NewGrid(3, 2, []int32{1, 5})
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int32
		want bool
	}{
		{"free origin", 0, 0, false},
		{"blocked first row", 1, 0, true},
		{"blocked second row", 2, 1, true},
		{"free second row", 0, 1, false},
		{"left of grid", -1, 0, true},
		{"right of grid", 3, 0, true},
		{"below grid", 0, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsColliding(tt.x, tt.y); got != tt.want {
				t.Errorf("IsColliding(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	assert.False(t, IsFree(g, 1, 0))
	assert.True(t, IsFree(g, 0, 0))
}

func TestNewGrid_Invalid(t *testing.T) {
	_, err := NewGrid(0, 5, nil)
	assert.Error(t, err)

	_, err = NewGrid(2, 2, []int32{4})
	assert.Error(t, err)
}

func TestLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width":4,"height":4,"collisions":[5]}`), 0o644))

	g, err := LoadGrid(path)
	require.NoError(t, err)

	assert.Equal(t, int32(4), g.Width())
	assert.Equal(t, int32(4), g.Height())
	assert.True(t, g.IsColliding(1, 1))
	assert.False(t, g.IsColliding(2, 1))

	_, err = LoadGrid(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestMapFunc(t *testing.T) {
	wall := MapFunc(func(x, _ int32) bool { return x == 3 })
	assert.True(t, wall.IsColliding(3, 9))
	assert.True(t, IsFree(wall, 2, 9))
}
