package restdown

import (
	"reflect"
	"testing"
)

func TestExtractEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		entries  []TOCEntry
		expected []string
	}{
		{
			name: "method padded to fixed width",
			entries: []TOCEntry{
				{Level: 2, ID: "GET-/a"},
				{Level: 2, ID: "POST-/b"},
			},
			expected: []string{"GET    /a", "POST   /b"},
		},
		{
			name: "long method keeps single space",
			entries: []TOCEntry{
				{Level: 2, ID: "OPTIONS-/things"},
			},
			expected: []string{"OPTIONS /things"},
		},
		{
			name: "one unsplittable id falls back for the whole set",
			entries: []TOCEntry{
				{Level: 2, ID: "GET-/a"},
				{Level: 2, ID: "DELETEALL"},
			},
			expected: []string{"GET /a", "DELETEALL"},
		},
		{
			name: "fallback rejoins all hyphen fragments with spaces",
			entries: []TOCEntry{
				{Level: 2, ID: "Some-Section-Name"},
				{Level: 2, ID: "NOHYPHEN"},
			},
			expected: []string{"Some Section Name", "NOHYPHEN"},
		},
		{
			name: "non level-2 entries ignored",
			entries: []TOCEntry{
				{Level: 1, ID: "overview"},
				{Level: 2, ID: "GET-/a"},
				{Level: 3, ID: "error-codes"},
			},
			expected: []string{"GET    /a"},
		},
		{
			name:     "no entries yields empty list",
			entries:  nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEndpoints(tt.entries)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractEndpoints() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}
