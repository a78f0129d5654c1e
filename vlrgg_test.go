package vlrgg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/govlr/vlrgg"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := vlrgg.Errorf(vlrgg.ENOTFOUND, "team %q not found", "test")

	assert.Equal(t, vlrgg.ENOTFOUND, vlrgg.ErrorCode(err))
	assert.Equal(t, "team \"test\" not found", vlrgg.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vlrgg.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vlrgg.EINTERNAL, vlrgg.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vlrgg.ErrorMessage(nil))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("attaches url and field", func(t *testing.T) {
		t.Parallel()

		err := vlrgg.Errorf(vlrgg.ENOTFOUND, "element not found")
		wrapped := vlrgg.WrapError(err, "https://www.vlr.gg/12345", "team name in match header")

		assert.Equal(t, vlrgg.ENOTFOUND, vlrgg.ErrorCode(wrapped))
		assert.Equal(t, "https://www.vlr.gg/12345", vlrgg.ErrorURL(wrapped))
		assert.Equal(t, "team name in match header", vlrgg.ErrorField(wrapped))
	})

	t.Run("keeps innermost context", func(t *testing.T) {
		t.Parallel()

		err := vlrgg.WrapError(vlrgg.Errorf(vlrgg.EINTPARSE, "bad integer"), "", "team score")
		wrapped := vlrgg.WrapError(err, "https://www.vlr.gg/12345", "match header")

		assert.Equal(t, vlrgg.EINTPARSE, vlrgg.ErrorCode(wrapped))
		assert.Equal(t, "https://www.vlr.gg/12345", vlrgg.ErrorURL(wrapped))
		assert.Equal(t, "team score", vlrgg.ErrorField(wrapped))
	})

	t.Run("converts foreign errors to EINTERNAL", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("boom")
		wrapped := vlrgg.WrapError(cause, "https://www.vlr.gg/events/all?page=1", "")

		assert.Equal(t, vlrgg.EINTERNAL, vlrgg.ErrorCode(wrapped))
		assert.True(t, errors.Is(wrapped, cause))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, vlrgg.WrapError(nil, "https://www.vlr.gg", "anything"))
	})
}

func TestPaginated_HasMore(t *testing.T) {
	t.Parallel()

	assert.True(t, vlrgg.Paginated[int]{Page: 1, TotalPages: 3}.HasMore())
	assert.False(t, vlrgg.Paginated[int]{Page: 3, TotalPages: 3}.HasMore())
	assert.False(t, vlrgg.Paginated[int]{Page: 4, TotalPages: 3}.HasMore())
}
