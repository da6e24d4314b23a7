package idgen

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	studentCodePattern = regexp.MustCompile(`^[A-Z][0-9]{7}$`)
	teacherCodePattern = regexp.MustCompile(`^T-[0-9]{5}$`)
	passwordPattern    = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{6}$`)
)

func newSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func TestStudentCodeShape(t *testing.T) {
	gen := newSeeded(1)
	for i := 0; i < 1000; i++ {
		code := gen.StudentCode()
		assert.Regexp(t, studentCodePattern, code)
	}
}

func TestTeacherCodeShape(t *testing.T) {
	gen := newSeeded(2)
	for i := 0; i < 1000; i++ {
		assert.Regexp(t, teacherCodePattern, gen.TeacherCode("T-"))
	}
}

func TestPasswordShape(t *testing.T) {
	gen := newSeeded(3)
	for i := 0; i < 1000; i++ {
		assert.Regexp(t, passwordPattern, gen.Password())
	}
}

func TestUniqueStudentCodeAvoidsUsedSet(t *testing.T) {
	// Replay the generator's own first outputs as the used set so the first
	// attempts are guaranteed collisions.
	first := newSeeded(42)
	used := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		used[first.StudentCode()] = struct{}{}
	}

	gen := newSeeded(42)
	code := gen.UniqueStudentCode(used)
	_, taken := used[code]
	assert.False(t, taken)
	assert.Regexp(t, studentCodePattern, code)
}

func TestUniqueTeacherCodeAvoidsUsedSet(t *testing.T) {
	first := newSeeded(7)
	used := map[string]struct{}{first.TeacherCode("T-"): {}}

	gen := newSeeded(7)
	code := gen.UniqueTeacherCode("T-", used)
	_, taken := used[code]
	assert.False(t, taken)
}

func TestNewWithNilSource(t *testing.T) {
	gen := New(nil)
	require.NotNil(t, gen)
	assert.Regexp(t, studentCodePattern, gen.StudentCode())
}

func TestUsedSet(t *testing.T) {
	set := UsedSet([]string{"A1234567", "B7654321"})
	require.Len(t, set, 2)
	_, ok := set["A1234567"]
	assert.True(t, ok)
}
