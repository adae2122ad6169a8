package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return "code error" }

func TestFind(t *testing.T) {
	err := Wrap(Wrapf(&codeError{code: 7}, "layer %d", 1), "outer")

	got, ok := Find[*codeError](err)
	require.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = Find[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrap_KeepsCause(t *testing.T) {
	base := New("boom")
	err := Wrapf(WithStack(base), "attempt %d", 2)

	assert.True(t, Is(err, base))
	assert.Equal(t, "attempt 2: boom", err.Error())
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, WithStack(nil))
}

func TestAs_MatchesWrappedTarget(t *testing.T) {
	err := Wrap(&codeError{code: 3}, "store")

	var target *codeError
	require.True(t, As(err, &target))
	assert.Equal(t, 3, target.code)
	assert.EqualError(t, Errorf("plan %s", "x"), "plan x")
}
