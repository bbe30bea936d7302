package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	require.Equal(t, 42, GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "not-a-number")
	require.Equal(t, 7, GetEnvInt("TEST_INT", 7))

	require.Equal(t, 7, GetEnvInt("TEST_INT_UNSET", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	require.True(t, GetEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "banana")
	require.False(t, GetEnvBool("TEST_BOOL", false))
}

func TestParseIntList(t *testing.T) {
	list, err := ParseIntList("3,1")
	require.NoError(t, err)
	require.Equal(t, []int{3, 1}, list)

	list, err = ParseIntList(" 7 , 2 , 1 ")
	require.NoError(t, err)
	require.Equal(t, []int{7, 2, 1}, list)

	_, err = ParseIntList("3,one")
	require.Error(t, err)
}

func TestGetEnvIntListFallsBackOnGarbage(t *testing.T) {
	t.Setenv("TEST_LIST", "3;1")
	require.Equal(t, []int{3, 1}, GetEnvIntList("TEST_LIST", "3,1"))

	t.Setenv("TEST_LIST", "5,2")
	require.Equal(t, []int{5, 2}, GetEnvIntList("TEST_LIST", "3,1"))
}
