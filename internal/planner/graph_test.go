package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockingFactorDirectUnlocks(t *testing.T) {
	session := newTestSession(t)

	factor, err := session.BlockingFactor("CS101")
	require.NoError(t, err)

	// CS101 appears in the rules for CS102 and in one OneOf branch of MA102.
	assert.Equal(t, []string{"CS102", "MA102"}, factor.DirectlyUnlocks)
}

func TestBlockingFactorTransitiveClosure(t *testing.T) {
	session := newTestSession(t)

	factor, err := session.BlockingFactor("CS101")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS102", "CS201", "CS301", "MA102"}, factor.TransitivelyUnlocks)

	// The closure always contains the direct set.
	for _, direct := range factor.DirectlyUnlocks {
		assert.Contains(t, factor.TransitivelyUnlocks, direct)
	}
}

func TestBlockingFactorLeafCourse(t *testing.T) {
	session := newTestSession(t)

	factor, err := session.BlockingFactor("CS301")
	require.NoError(t, err)

	assert.Empty(t, factor.DirectlyUnlocks)
	assert.Empty(t, factor.TransitivelyUnlocks)
	assert.Equal(t, 3, factor.ChainLength)
}

func TestChainLength(t *testing.T) {
	session := newTestSession(t)

	cases := map[string]int{
		"CS101": 0, // no prerequisites
		"CS102": 1, // CS101 -> CS102
		"CS201": 2, // CS101 -> CS102 -> CS201
		"CS301": 3, // CS101 -> CS102 -> CS201 -> CS301
		"MA102": 1,
		"ELEC1": 0,
	}
	for course, want := range cases {
		got, err := session.ChainLength(course)
		require.NoError(t, err, course)
		assert.Equal(t, want, got, course)
	}
}

func TestChainLengthUnknownCourse(t *testing.T) {
	session := newTestSession(t)

	_, err := session.ChainLength("NOPE999")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestChainLengthCyclic(t *testing.T) {
	session := newCyclicSession(t)

	_, err := session.ChainLength("LOOPA")
	assert.ErrorIs(t, err, ErrCyclicRule)

	// A course downstream of a cycle inherits an undefined chain length.
	_, err = session.ChainLength("DOWNSTREAM")
	assert.ErrorIs(t, err, ErrCyclicRule)
}

func TestBlockingFactorCyclic(t *testing.T) {
	session := newCyclicSession(t)

	_, err := session.BlockingFactor("LOOPB")
	assert.ErrorIs(t, err, ErrCyclicRule)
}
