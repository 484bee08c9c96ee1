package gorm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStringList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"json null", "null", []string{}},
		{"json array", `["Grow sales","Hire 2 staff"]`, []string{"Grow sales", "Hire 2 staff"}},
		{"json array with blanks", `["a"," ","b"]`, []string{"a", "b"}},
		{"json mixed", `["a",2,null]`, []string{"a", "2"}},
		{"newline delimited", "Grow sales\nHire 2 staff\n", []string{"Grow sales", "Hire 2 staff"}},
		{"crlf delimited", "one\r\ntwo", []string{"one", "two"}},
		{"plain string", "Open a second stall, then expand", []string{"Open a second stall, then expand"}},
		{"json string", `"single goal"`, []string{"single goal"}},
		{"broken json", `[unterminated`, []string{"[unterminated"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeStringList(tc.raw))
		})
	}
}

func TestStringList_ScanValue(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte("first\nsecond")))
	assert.Equal(t, StringList{"first", "second"}, l)

	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, `["first","second"]`, v)

	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))

	var empty StringList
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringList_JSON(t *testing.T) {
	var payload struct {
		Goals StringList `json:"goals"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"goals":["Grow sales","Hire 2 staff"]}`), &payload))
	assert.Equal(t, StringList{"Grow sales", "Hire 2 staff"}, payload.Goals)

	require.NoError(t, json.Unmarshal([]byte(`{"goals":"a\nb"}`), &payload))
	assert.Equal(t, StringList{"a", "b"}, payload.Goals)

	assert.Error(t, json.Unmarshal([]byte(`{"goals":5}`), &payload))

	out, err := json.Marshal(struct {
		Goals StringList `json:"goals"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"goals":[]}`, string(out))
}
