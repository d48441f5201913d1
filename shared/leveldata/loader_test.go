package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="32" height="32" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <objectgroup id="2" name="Obstacles">
  <object id="1" name="wall-1" x="0" y="0" width="64" height="256">
   <properties>
    <property name="elevation" type="float" value="0"/>
    <property name="height" type="float" value="4"/>
   </properties>
  </object>
  <object id="2" x="160" y="32" width="32" height="32">
   <properties>
    <property name="elevation" type="float" value="0.5"/>
    <property name="height" type="float" value="1"/>
    <property name="visual" type="bool" value="false"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadObstacles(t *testing.T) {
	fsys := fstest.MapFS{"levels/track.tmx": {Data: []byte(trackTMX)}}

	layout, err := LoadObstacles(fsys, "levels/track.tmx", "Obstacles")
	require.NoError(t, err)
	require.Len(t, layout.Obstacles, 2)
	assert.InDelta(t, 1.0/16, layout.Scale, 1e-12)

	wall := layout.Obstacles[0]
	assert.Equal(t, "wall-1", wall.Name)
	assert.InDelta(t, 2.0, wall.X, 1e-9)
	assert.InDelta(t, 0.0, wall.Y, 1e-9)
	assert.InDelta(t, 8.0, wall.Z, 1e-9)
	assert.InDelta(t, 4.0, wall.Width, 1e-9)
	assert.InDelta(t, 4.0, wall.Height, 1e-9)
	assert.InDelta(t, 16.0, wall.Depth, 1e-9)
	assert.True(t, wall.Visual)

	crate := layout.Obstacles[1]
	assert.Equal(t, "obstacle-2", crate.Name)
	assert.InDelta(t, 11.0, crate.X, 1e-9)
	assert.InDelta(t, 0.5, crate.Y, 1e-9)
	assert.InDelta(t, 3.0, crate.Z, 1e-9)
	assert.False(t, crate.Visual)
}

func TestLoadObstacles_MissingLayer(t *testing.T) {
	fsys := fstest.MapFS{"levels/track.tmx": {Data: []byte(trackTMX)}}

	_, err := LoadObstacles(fsys, "levels/track.tmx", "Walls")
	require.ErrorIs(t, err, ErrNoObstacleLayer)
}

func TestLoadObstacles_MissingFile(t *testing.T) {
	_, err := LoadObstacles(fstest.MapFS{}, "levels/none.tmx", "Obstacles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load TMX levels/none.tmx")
}

func TestLoadObstacles_RejectsFlatObstacle(t *testing.T) {
	const flat = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="8" height="8" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Obstacles">
  <object id="1" name="flat" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"flat.tmx": {Data: []byte(flat)}}

	_, err := LoadObstacles(fsys, "flat.tmx", "Obstacles")
	require.ErrorIs(t, err, ErrInvalidObstacle)
}
