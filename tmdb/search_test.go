package tmdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiResultUnknownMediaType(t *testing.T) {
	var res MultiResult
	err := json.Unmarshal([]byte(`{"media_type":"collection","id":10}`), &res)
	assert.ErrorIs(t, err, ErrInvalidMediaType)
}

func TestMultiResultMarshalKeepsDiscriminator(t *testing.T) {
	in := MultiResult{
		MediaType: MediaTypeTV,
		TVShow: &TVShowShort{
			TVShowBase: TVShowBase{ID: 1396, Name: "Breaking Bad"},
			GenreIDs:   []int{18},
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "tv", fields["media_type"])
	assert.Equal(t, "Breaking Bad", fields["name"])

	var out MultiResult
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotNil(t, out.TVShow)
	assert.Equal(t, 1396, out.ID())
	assert.Nil(t, out.Movie)
}

func TestMultiResultMarshalEmpty(t *testing.T) {
	_, err := json.Marshal(MultiResult{})
	assert.Error(t, err)
}
