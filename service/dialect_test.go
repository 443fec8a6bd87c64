package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchDialect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "cast equality",
			in:   "WHERE datePublished = CAST(GETDATE() AS DATE)",
			want: "WHERE CAST(datePublished AS DATE) = CAST(GETDATE() AS DATE)",
		},
		{
			name: "convert equality",
			in:   "SELECT * FROM t WHERE datePublished = CONVERT(DATE, GETDATE());",
			want: "SELECT * FROM t WHERE CAST(datePublished AS DATE) = CAST(GETDATE() AS DATE);",
		},
		{
			name: "case insensitive",
			in:   "where DATEPUBLISHED=convert(date,getdate())",
			want: "where CAST(datePublished AS DATE) = CAST(GETDATE() AS DATE)",
		},
		{
			name: "other phrasing untouched",
			in:   "WHERE datePublished >= DATEADD(day, -1, GETDATE())",
			want: "WHERE datePublished >= DATEADD(day, -1, GETDATE())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatchDialect(tt.in))
		})
	}
}

func TestPatchDialect_Idempotent(t *testing.T) {
	inputs := []string{
		"WHERE datePublished = CAST(GETDATE() AS DATE)",
		"WHERE datePublished = CONVERT(DATE, GETDATE()) AND sentiment = 'negative'",
		"SELECT TOP 10 * FROM tbl_sentiment_analysis;",
	}
	for _, in := range inputs {
		once := PatchDialect(in)
		assert.Equal(t, once, PatchDialect(once), in)
	}
}
