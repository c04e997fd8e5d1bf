package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_StringAndTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  Kind
		name  string
		title string
	}{
		{Bubble, "bubble", "Bubble Sort"},
		{Quick, "quick", "Quick Sort"},
		{Cocktail, "cocktail", "Cocktail Sort"},
		{Shell, "shell", "Shell Sort"},
		{Heap, "heap", "Heap Sort"},
		{Merge, "merge", "Merge Sort"},
		{Selection, "selection", "Selection Sort"},
		{Insertion, "insertion", "Insertion Sort"},
		{Gnome, "gnome", "Gnome Sort"},
		{Kind(99), "unknown", "Unknown Sort"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.kind.String())
		assert.Equal(t, tt.title, tt.kind.Title())
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"bubble", Bubble, false},
		{"  Quick ", Quick, false},
		{"Merge Sort", Merge, false},
		{"GNOME", Gnome, false},
		{"bogo", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(struct {
		Algorithm Kind `json:"algorithm"`
	}{Heap})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"heap"}`, string(data))

	var k Kind
	require.NoError(t, json.Unmarshal([]byte(`"shell"`), &k))
	assert.Equal(t, Shell, k)

	assert.Error(t, json.Unmarshal([]byte(`"bogo"`), &k))
	_, err = json.Marshal(Kind(-1))
	assert.Error(t, err)
}

func TestNew_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := New(Kind(42), 10)
	assert.Error(t, err)

	for _, k := range Kinds {
		alg, err := New(k, 10)
		require.NoError(t, err)
		assert.Equal(t, k, alg.Kind())
	}
}
