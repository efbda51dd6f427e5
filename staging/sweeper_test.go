package staging

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSweeperRejectsBadSchedule(t *testing.T) {
	st, err := New(t.TempDir())
	assert.NoError(t, err)

	_, err = NewSweeper(st, "not a cron expression", time.Hour)
	assert.Error(t, err)
}

func TestSweeperSweepRemovesStaleFiles(t *testing.T) {
	st, err := New(t.TempDir())
	assert.NoError(t, err)

	stale, err := st.Stage("old.png", writeTo([]byte("old")))
	assert.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	assert.NoError(t, os.Chtimes(stale, past, past))

	sweeper, err := NewSweeper(st, "@hourly", 30*time.Minute)
	assert.NoError(t, err)

	sweeper.sweep()
	assert.NoFileExists(t, stale)

	sweeper.Start()
	sweeper.Stop()
}
