package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelAstiav(t *testing.T) {
	for _, level := range []Level{
		LevelUndefined,
		LevelPanic,
		LevelFatal,
		LevelError,
		LevelWarning,
		LevelInfo,
		LevelDebug,
		LevelTrace,
	} {
		require.Equal(t, level, LevelFromAstiav(LevelToAstiav(level)), level.String())
	}
}
