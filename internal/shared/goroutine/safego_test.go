package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"parley/internal/shared/logger"
)

type recordingLogger struct {
	logger.Interface
	errorCalls int
}

func (l *recordingLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.errorCalls++
}

func TestSafe_RunsSynchronously(t *testing.T) {
	log := &recordingLogger{}

	ran := false
	Safe(log, "test", func() { ran = true })

	// The function completed before Safe returned; no goroutine involved.
	assert.True(t, ran)
	assert.Equal(t, 0, log.errorCalls)
}

func TestSafe_RecoversPanic(t *testing.T) {
	log := &recordingLogger{}

	assert.NotPanics(t, func() {
		Safe(log, "test", func() { panic("boom") })
	})
	assert.Equal(t, 1, log.errorCalls)
}

func TestSafe_SequentialCallsPreserveOrder(t *testing.T) {
	log := &recordingLogger{}

	var got []int
	for i := 1; i <= 3; i++ {
		i := i
		Safe(log, "test", func() { got = append(got, i) })
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}
