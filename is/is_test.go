package is

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualTo(t *testing.T) {
	p := EqualTo("go")
	require.True(t, p("go"))
	require.False(t, p("java"))
}

func TestOneOf(t *testing.T) {
	p := OneOf(2, 3, 5, 7)
	require.True(t, p(5))
	require.False(t, p(4))
	require.False(t, OneOf[int]()(0))
}

func TestZero(t *testing.T) {
	require.True(t, Zero[int]()(0))
	require.False(t, Zero[int]()(1))
	require.True(t, Zero[string]()(""))
}

func TestNotZero(t *testing.T) {
	require.True(t, NotZero[int]()(1))
	require.False(t, NotZero[string]()(""))
}

func TestLessThan(t *testing.T) {
	p := LessThan(10)
	require.True(t, p(9))
	require.False(t, p(10))
	require.False(t, p(11))
}

func TestGreaterThan(t *testing.T) {
	p := GreaterThan(1.5)
	require.True(t, p(2.0))
	require.False(t, p(1.5))
	require.False(t, p(1.0))
}

func TestNot(t *testing.T) {
	p := Not(EqualTo(1))
	require.False(t, p(1))
	require.True(t, p(2))
}

func TestAll(t *testing.T) {
	p := All(GreaterThan(0), LessThan(10))
	require.True(t, p(5))
	require.False(t, p(0))
	require.False(t, p(10))

	// no predicates matches everything
	require.True(t, All[int]()(42))
}

func TestAny(t *testing.T) {
	p := Any(LessThan(0), GreaterThan(10))
	require.True(t, p(-1))
	require.True(t, p(11))
	require.False(t, p(5))

	// no predicates matches nothing
	require.False(t, Any[int]()(42))
}
