package oplog_test

import (
	"testing"

	"github.com/storiqa/saga-coordinator/internal/modules/saga/oplog"
	"github.com/stretchr/testify/assert"
)

func TestOperationLog_ReverseWalksMostRecentFirst(t *testing.T) {
	log := oplog.New[string]()
	log.Append("start-a")
	log.Append("complete-a")
	log.Append("start-b")

	assert.Equal(t, 3, log.Len())
	assert.Equal(t, []string{"start-b", "complete-a", "start-a"}, log.Reverse())
}

func TestOperationLog_EmptyReverseIsEmpty(t *testing.T) {
	log := oplog.New[int]()
	assert.Empty(t, log.Reverse())
}
