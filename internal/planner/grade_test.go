package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradePoints(t *testing.T) {
	assert.Equal(t, 4.0, Grade("A").Points())
	assert.Equal(t, 4.0, Grade("A+").Points())
	assert.Equal(t, 3.0, Grade("B").Points())
	assert.Equal(t, 2.0, Grade("C").Points())
	assert.Equal(t, 1.7, Grade("C-").Points())
	assert.Equal(t, 1.0, Grade("D").Points())
	assert.Equal(t, 0.0, Grade("F").Points())
}

func TestGradePointsPassAndWithdraw(t *testing.T) {
	// Pass/Fail transcripts map Pass to a C equivalent.
	assert.Equal(t, 2.0, Grade("Pass").Points())
	assert.Equal(t, 2.0, Grade("P").Points())
	assert.Equal(t, 0.0, Grade("W").Points())
	assert.Equal(t, 0.0, Grade("Withdraw").Points())
}

func TestGradePointsTotalMapping(t *testing.T) {
	// Unknown and empty grades resolve to zero rather than erroring.
	assert.Equal(t, 0.0, Grade("").Points())
	assert.Equal(t, 0.0, Grade("Incomplete").Points())
	assert.Equal(t, 0.0, Grade("??").Points())
}

func TestGradePointsNormalization(t *testing.T) {
	assert.Equal(t, 3.0, Grade("b").Points())
	assert.Equal(t, 2.0, Grade(" pass ").Points())
}

func TestGradeAtLeast(t *testing.T) {
	assert.True(t, Grade("B").AtLeast("C"))
	assert.True(t, Grade("C").AtLeast("C"))
	assert.True(t, Grade("C-").AtLeast("D"))

	// The C- boundary: 1.7 points is below a required C at 2.0.
	assert.False(t, Grade("C-").AtLeast("C"))
	assert.False(t, Grade("F").AtLeast("D"))
}
