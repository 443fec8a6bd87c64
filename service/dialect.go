package service

import "regexp"

const todayDatePredicate = "CAST(datePublished AS DATE) = CAST(GETDATE() AS DATE)"

// Known ways the model compares a datetime column to today's date that miss
// every row carrying a time component.
var todayEqualityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)datePublished\s*=\s*CONVERT\(DATE,\s*GETDATE\(\)\)`),
	regexp.MustCompile(`(?i)datePublished\s*=\s*CAST\(GETDATE\(\)\s+AS\s+DATE\)`),
}

// PatchDialect rewrites the known-bad "datePublished equals today" predicates
// into a date-to-date comparison. Other phrasings are left alone.
func PatchDialect(sql string) string {
	for _, re := range todayEqualityPatterns {
		sql = re.ReplaceAllLiteralString(sql, todayDatePredicate)
	}
	return sql
}
