package jobcoach_test

import (
	"errors"
	"testing"

	"github.com/jobcoach/jobcoach"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := jobcoach.Errorf(jobcoach.ENOTFOUND, "posting %q not found", "test")

	assert.Equal(t, jobcoach.ENOTFOUND, jobcoach.ErrorCode(err))
	assert.Equal(t, "posting \"test\" not found", jobcoach.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobcoach.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, jobcoach.EINTERNAL, jobcoach.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobcoach.ErrorMessage(nil))
}
