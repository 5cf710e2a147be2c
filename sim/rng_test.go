package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedRNG_SameSubsystemSameInstance(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))
	first := p.ForSubsystem(SubsystemWorkload)
	second := p.ForSubsystem(SubsystemWorkload)
	assert.Same(t, first, second)
}

func TestPartitionedRNG_DeterministicAcrossInstances(t *testing.T) {
	a := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemWorkload)
	b := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemWorkload)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int63(), b.Int63(), "draw %d differs for identical seeds", i)
	}
}

func TestPartitionedRNG_SubsystemsIsolated(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))
	w := p.ForSubsystem(SubsystemWorkload)
	c := p.ForSubsystem(SubsystemCapacity)

	equal := true
	for i := 0; i < 10; i++ {
		if w.Int63() != c.Int63() {
			equal = false
			break
		}
	}
	assert.False(t, equal, "workload and capacity subsystems should draw from different streams")
}

func TestPartitionedRNG_DifferentSeedsDiffer(t *testing.T) {
	a := NewPartitionedRNG(NewSimulationKey(1)).ForSubsystem(SubsystemWorkload)
	b := NewPartitionedRNG(NewSimulationKey(2)).ForSubsystem(SubsystemWorkload)
	assert.NotEqual(t, a.Int63(), b.Int63())
}

func TestPartitionedRNG_Key(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(7))
	assert.Equal(t, NewSimulationKey(7), p.Key())
}
