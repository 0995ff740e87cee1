package decode_test

import (
	"encoding/json"
	"testing"

	"emoji-catalog/core/decode"
	"emoji-catalog/core/errdefs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjects(t *testing.T) {
	text := `[{"id":1,"title":"Smile","image":"http://x/a.png","category":0},{"id":"2","title":"Wink"}]`

	maps, err := decode.Objects(text)
	require.NoError(t, err)
	require.Len(t, maps, 2)

	id, ok := maps[0].Int("id")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, "Smile", maps[0].StringOr("title", ""))

	id, ok = maps[1].Int("id")
	assert.True(t, ok)
	assert.Equal(t, 2, id)
	assert.False(t, maps[1].Has("image"))
}

func TestObjects_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Malformed", `[{"id":1`},
		{"NotArray", `{"id":1}`},
		{"ScalarElement", `[1,2]`},
		{"TrailingData", `[] []`},
		{"Empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode.Objects(tt.text)
			assert.ErrorIs(t, err, errdefs.ErrDecoding)
		})
	}
}

func TestStrings(t *testing.T) {
	names, err := decode.Strings(`["Animals","Faces",3]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Animals", "Faces", "3"}, names)

	_, err = decode.Strings(`["Animals",{"x":1}]`)
	assert.ErrorIs(t, err, errdefs.ErrDecoding)
}

func TestInto(t *testing.T) {
	var v struct {
		Emoji json.Number `json:"emoji"`
	}
	require.NoError(t, decode.Into(`{"emoji": 5000}`, &v))
	assert.Equal(t, "5000", v.Emoji.String())

	assert.ErrorIs(t, decode.Into(`{`, &v), errdefs.ErrDecoding)
}

func TestFieldMap(t *testing.T) {
	f := decode.FieldMap{
		"id":      json.Number("7"),
		"license": "",
		"faves":   "12",
		"source":  nil,
		"tags":    []any{"a"},
	}

	assert.True(t, f.Has("id"))
	assert.True(t, f.Has("license"))
	assert.False(t, f.Has("source"))
	assert.False(t, f.Has("missing"))

	assert.Equal(t, 12, f.IntOr("faves", 0))
	assert.Equal(t, 9, f.IntOr("missing", 9))
	assert.Equal(t, "keep", f.StringOr("source", "keep"))
	assert.Equal(t, "keep", f.StringOr("tags", "keep"))
	assert.Equal(t, "", f.StringOr("license", "keep"))
}
