// Package idgen produces the opaque codes and credentials handed out during
// registration and fee collection. Codes are not security tokens; they only
// need to be unique within their table, which callers enforce by passing the
// set of codes already in use.
package idgen

import (
	"math/rand"
	"strings"
	"time"
)

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	allLetters   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

// Generator emits codes from a deterministic random source.
type Generator struct {
	rng *rand.Rand
}

// New constructs a Generator. A nil source falls back to a time-seeded one.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// StudentCode returns one uppercase letter followed by seven digits.
func (g *Generator) StudentCode() string {
	var b strings.Builder
	b.Grow(8)
	b.WriteByte(upperLetters[g.rng.Intn(len(upperLetters))])
	g.writeDigits(&b, 7)
	return b.String()
}

// TeacherCode returns the prefix followed by five digits.
func (g *Generator) TeacherCode(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + 5)
	b.WriteString(prefix)
	g.writeDigits(&b, 5)
	return b.String()
}

// Password returns two letters followed by six digits.
func (g *Generator) Password() string {
	var b strings.Builder
	b.Grow(8)
	for i := 0; i < 2; i++ {
		b.WriteByte(allLetters[g.rng.Intn(len(allLetters))])
	}
	g.writeDigits(&b, 6)
	return b.String()
}

// UniqueStudentCode regenerates until the code is absent from used.
func (g *Generator) UniqueStudentCode(used map[string]struct{}) string {
	return g.unique(g.StudentCode, used)
}

// UniqueTeacherCode regenerates until the code is absent from used.
func (g *Generator) UniqueTeacherCode(prefix string, used map[string]struct{}) string {
	return g.unique(func() string { return g.TeacherCode(prefix) }, used)
}

// UsedSet converts a code list into the lookup set the Unique* helpers take.
func UsedSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

func (g *Generator) unique(next func() string, used map[string]struct{}) string {
	for {
		code := next()
		if _, taken := used[code]; !taken {
			return code
		}
	}
}

func (g *Generator) writeDigits(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(digits[g.rng.Intn(len(digits))])
	}
}
