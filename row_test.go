package fromrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRow_Decode(t *testing.T) {
	row := MapRow{"id": int64(1), "name": "ana"}

	var id int64
	require.NoError(t, row.Decode("id", &id))
	assert.Equal(t, int64(1), id)

	var name string
	require.NoError(t, row.Decode("name", &name))
	assert.Equal(t, "ana", name)
}

func TestMapRow_MissingColumn(t *testing.T) {
	row := MapRow{"id": int64(1)}

	var s string
	err := row.Decode("name", &s)
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "name", de.Column)
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestMapRow_ExactMatching(t *testing.T) {
	row := MapRow{"Name": "ana"}

	var s string
	assert.Error(t, row.Decode("name", &s), "column names never case-fold")
	require.NoError(t, row.Decode("Name", &s))
}

func TestMapRow_BadTypeAttribution(t *testing.T) {
	row := MapRow{"id": "not a number"}

	var id int64
	err := row.Decode("id", &id)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "id", de.Column)
	assert.NotErrorIs(t, err, ErrNoColumn)
}

func TestMapRow_Rereadable(t *testing.T) {
	row := MapRow{"id": int64(1)}
	for i := 0; i < 3; i++ {
		var id int64
		require.NoError(t, row.Decode("id", &id))
		assert.Equal(t, int64(1), id)
	}
}

func TestDecodeColumn(t *testing.T) {
	row := MapRow{"n": int64(5)}

	n, err := DecodeColumn[int32](row, "n")
	require.NoError(t, err)
	assert.Equal(t, int32(5), n)

	_, err = DecodeColumn[string](row, "missing")
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestDecodeError_Message(t *testing.T) {
	row := MapRow{}
	var s string
	err := row.Decode("user_id", &s)
	assert.EqualError(t, err, `decode column "user_id": no such column`)
}
