package utils

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundtrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC)

	cursor := EncodeCursor(ts, id)
	require.NotEmpty(t, cursor)

	gotTime, gotID, err := DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestEncodeCursor_NilIDProducesEmptyCursor(t *testing.T) {
	assert.Empty(t, EncodeCursor(time.Now(), uuid.Nil))
}

func TestDecodeCursor_EmptyMeansStartFromBeginning(t *testing.T) {
	gotTime, gotID, err := DecodeCursor("")
	require.NoError(t, err)
	assert.True(t, gotTime.IsZero())
	assert.Equal(t, uuid.Nil, gotID)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	cases := map[string]string{
		"not base64":    "%%%not-base64%%%",
		"missing parts": base64.URLEncoding.EncodeToString([]byte("1234567890")),
		"bad timestamp": base64.URLEncoding.EncodeToString([]byte("abc_" + uuid.NewString())),
		"bad uuid":      base64.URLEncoding.EncodeToString([]byte("1234567890_not-a-uuid")),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeCursor(cursor)
			assert.Error(t, err)
		})
	}
}
