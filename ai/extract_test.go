package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSQL(t *testing.T) {
	tests := []struct {
		name      string
		generated string
		want      string
	}{
		{
			name:      "statement inside prose",
			generated: "Here is your query:\n\nSELECT title, sentiment\nFROM tbl_sentiment_analysis\nWHERE sentiment = 'negative';\n\nThis lists negative news.",
			want:      "SELECT title, sentiment\nFROM tbl_sentiment_analysis\nWHERE sentiment = 'negative';",
		},
		{
			name:      "markdown fence",
			generated: "```sql\nselect count(*) from tbl_sentiment_analysis;\n```",
			want:      "select count(*) from tbl_sentiment_analysis;",
		},
		{
			name:      "only first statement kept",
			generated: "SELECT 1; SELECT 2;",
			want:      "SELECT 1;",
		},
		{
			name:      "unterminated runs to end of text",
			generated: "Sure! SELECT * FROM tbl_sentiment_analysis",
			want:      "SELECT * FROM tbl_sentiment_analysis",
		},
		{
			name:      "unterminated keeps trailing prose",
			generated: "SELECT TOP 5 title FROM tbl_sentiment_analysis\nORDER BY datePublished DESC\n",
			want:      "SELECT TOP 5 title FROM tbl_sentiment_analysis\nORDER BY datePublished DESC",
		},
		{
			name:      "no select passes through trimmed",
			generated: "  I cannot answer that with this table.  \n",
			want:      "I cannot answer that with this table.",
		},
		{
			name:      "empty",
			generated: "",
			want:      "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractSQL(tc.generated))
		})
	}
}

func TestExtractSQL_CaseInsensitiveKeepsOriginalCase(t *testing.T) {
	got := ExtractSQL("try this: SeLeCt title FROM tbl_sentiment_analysis;")
	assert.Equal(t, "SeLeCt title FROM tbl_sentiment_analysis;", got)
}
