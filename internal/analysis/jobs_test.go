package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchJobs_AllCategories(t *testing.T) {
	got := MatchJobs("React frontend, Python data pipelines and SQL, agile team lead")

	require.Len(t, got, 3)
	assert.Equal(t, "Frontend Developer", got[0].Title)
	assert.Equal(t, 92, got[0].MatchPercentage)
	assert.Equal(t, "Data Analyst", got[1].Title)
	assert.Equal(t, 88, got[1].MatchPercentage)
	assert.Equal(t, "Project Manager", got[2].Title)
	assert.Equal(t, 85, got[2].MatchPercentage)
}

func TestMatchJobs_SingleCategory(t *testing.T) {
	got := MatchJobs("JAVASCRIPT everywhere")

	require.Len(t, got, 1)
	assert.Equal(t, "Frontend Developer", got[0].Title)
}

func TestMatchJobs_Fallback(t *testing.T) {
	got := MatchJobs("a gardener with a truck")

	require.Len(t, got, 1)
	assert.Equal(t, "General Associate", got[0].Title)
	assert.Equal(t, 70, got[0].MatchPercentage)
}

func TestMatchJobs_NeverMoreThanThree(t *testing.T) {
	got := MatchJobs("react javascript frontend python data sql manager lead agile")
	assert.LessOrEqual(t, len(got), 3)
}
