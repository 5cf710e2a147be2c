package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCluster_Validation(t *testing.T) {
	_, err := NewCluster(0, 100, 50)
	assert.Error(t, err)

	_, err = NewCluster(-1, 100, 50)
	assert.Error(t, err)

	_, err = NewCluster(4, -100, 50)
	assert.Error(t, err)

	c, err := NewCluster(4, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Size())
	for i, d := range c.Devices {
		assert.Equal(t, i, d.ID)
		assert.False(t, d.Busy)
	}
}

func TestCluster_SelectDevicePrefersLowestIdleIndex(t *testing.T) {
	c, err := NewCluster(3, 100, 50)
	require.NoError(t, err)

	assert.Equal(t, 0, c.SelectDevice().ID)

	c.Devices[0].Busy = true
	assert.Equal(t, 1, c.SelectDevice().ID)

	c.Devices[1].Busy = true
	assert.Equal(t, 2, c.SelectDevice().ID)
}

func TestCluster_SelectDeviceNilWhenAllBusy(t *testing.T) {
	c, err := NewCluster(2, 100, 50)
	require.NoError(t, err)
	for _, d := range c.Devices {
		d.Busy = true
	}
	assert.Nil(t, c.SelectDevice())
}
