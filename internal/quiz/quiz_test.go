package quiz

import (
	"fmt"
	"testing"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr error
	}{
		{path: "tag:mom&product_type:Birthday", want: "(tag:mom) AND (product_type:Birthday)"},
		{path: "tag:mom", want: "(tag:mom)"},
		{path: "tag:a&tag:a&product_type:b", want: "(tag:a) AND (tag:a) AND (product_type:b)"},
		{path: "&tag:mom&", want: "(tag:mom)"},
		{path: "", wantErr: ErrInvalidQuery},
		{path: " & ", wantErr: ErrInvalidQuery},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := BuildSearchQuery(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitTitle(t *testing.T) {
	name, creator := SplitTitle(`"Happy Birthday" by Ana`)
	assert.Equal(t, "Happy Birthday", name)
	assert.Equal(t, "Ana", creator)

	name, creator = SplitTitle("Thanks")
	assert.Equal(t, "Thanks", name)
	assert.Empty(t, creator)

	name, creator = SplitTitle("'Boss' by Kim by Lee")
	assert.Equal(t, "Boss", name)
	assert.Equal(t, "Kim", creator)
}

func TestSelection(t *testing.T) {
	sel := Selection{Relationship: Personal, Recipient: "mom", ProductType: "Birthday"}
	require.NoError(t, sel.Validate())
	assert.Equal(t, "tag:mom&product_type:Birthday", sel.SearchPath())

	assert.ErrorIs(t, Selection{Relationship: Personal, Recipient: "mom"}.Validate(), ErrIncomplete)
	assert.ErrorIs(t, Selection{Relationship: "family", Recipient: "mom", ProductType: "x"}.Validate(), ErrUnknownAnswer)
	assert.ErrorIs(t, Selection{Relationship: Personal, Recipient: "mom", ProductType: "Cards & Gifts"}.Validate(), ErrUnknownAnswer)
	assert.ErrorIs(t, Selection{Relationship: Personal, Recipient: "mom&dad", ProductType: "Birthday"}.Validate(), ErrUnknownAnswer)
}

func TestNewSuggestions(t *testing.T) {
	items := make([]entity.ProductCard, 10)
	for i := range items {
		items[i] = entity.ProductCard{ID: fmt.Sprint(i), Title: fmt.Sprintf(`"Card %d" by Ana`, i)}
	}

	s := NewSuggestions("(tag:mom)", items)
	require.Len(t, s.Featured, 3)
	require.Len(t, s.More, 4)
	assert.Equal(t, "0", s.Featured[0].ID)
	assert.Equal(t, "Card 0", s.Featured[0].DisplayTitle)
	assert.Equal(t, "Ana", s.Featured[0].Creator)
	assert.Equal(t, "4", s.More[0].ID, "the fourth result is skipped")
	assert.Equal(t, "7", s.More[3].ID)
	assert.Equal(t, 10, s.Total)

	short := NewSuggestions("q", items[:5])
	assert.Len(t, short.Featured, 3)
	assert.Len(t, short.More, 1)

	empty := NewSuggestions("q", nil)
	assert.NotNil(t, empty.Featured)
	assert.NotNil(t, empty.More)
	assert.Empty(t, empty.Featured)
}
