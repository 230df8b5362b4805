package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLoggerLogModeClones(t *testing.T) {
	base := NewGormLogger(100 * time.Millisecond)
	silent := base.LogMode(gormlogger.Silent).(*GormLogger)

	assert.Equal(t, gormlogger.Warn, base.level)
	assert.Equal(t, gormlogger.Silent, silent.level)
	assert.Equal(t, base.slowThreshold, silent.slowThreshold)
}

func TestGormLoggerSilentSkipsTrace(t *testing.T) {
	silent := NewGormLogger(0).LogMode(gormlogger.Silent)
	called := false
	silent.Trace(t.Context(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 1
	}, nil)
	assert.False(t, called)
}
