package utils_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twitchtv/twirp"

	"github.com/xtrius/ultimate-interviewer/internal/utils"
)

func TestFromBackend(t *testing.T) {
	const op = "RoomService.GetRoom"

	t.Run("twirp not found", func(t *testing.T) {
		err := utils.FromBackend(op, twirp.NewError(twirp.NotFound, "requested room does not exist"))
		require.True(t, utils.IsCode(err, utils.CodeNotFound))
		require.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
		require.Contains(t, err.Error(), "requested room does not exist")
	})

	t.Run("twirp unavailable", func(t *testing.T) {
		err := utils.FromBackend(op, twirp.NewError(twirp.Unavailable, "service down"))
		require.True(t, utils.IsCode(err, utils.CodeUnavailable))
		require.Equal(t, http.StatusServiceUnavailable, utils.HTTPStatus(err))
	})

	t.Run("twirp deadline", func(t *testing.T) {
		err := utils.FromBackend(op, twirp.NewError(twirp.DeadlineExceeded, "too slow"))
		require.True(t, utils.IsCode(err, utils.CodeTimeout))
		require.Equal(t, http.StatusGatewayTimeout, utils.HTTPStatus(err))
	})

	t.Run("plain errors are internal, message preserved", func(t *testing.T) {
		err := utils.FromBackend(op, errors.New("dial tcp: connection refused"))
		require.True(t, utils.IsCode(err, utils.CodeInternal))
		require.Equal(t, http.StatusInternalServerError, utils.HTTPStatus(err))
		require.Contains(t, err.Error(), "connection refused")
	})

	t.Run("wrapped error unwraps to the original", func(t *testing.T) {
		orig := twirp.NewError(twirp.NotFound, "gone")
		err := utils.FromBackend(op, orig)
		require.ErrorIs(t, err, orig)
	})
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest,
		utils.HTTPStatus(utils.E(utils.CodeInvalidArgument, "op", "bad", nil)))
	require.Equal(t, http.StatusInternalServerError,
		utils.HTTPStatus(utils.E(utils.CodeInternal, "op", "boom", nil)))
	require.Equal(t, http.StatusInternalServerError, utils.HTTPStatus(errors.New("raw")))
}
