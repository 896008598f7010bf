package demand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSkills(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  []string
	}{
		{name: "trims and lowercases", in: " Java , SQL ", out: []string{"java", "sql"}},
		{name: "drops empty tokens", in: "python,, ,aws,", out: []string{"python", "aws"}},
		{name: "empty", in: "", out: []string{}},
		{name: "keeps order", in: "c,b,a", out: []string{"c", "b", "a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, ParseSkills(tc.in))
		})
	}
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery(" Data Analyst ", "Hyderabad ", " 2-5 Years", "Analytics", "Excel, Power BI")
	require.Equal(t, JobQuery{
		JobTitle:        "data analyst",
		Location:        "hyderabad",
		ExperienceLevel: "2-5 years",
		Industry:        "analytics",
		RequiredSkills:  []string{"excel", "power bi"},
	}, q)
}
