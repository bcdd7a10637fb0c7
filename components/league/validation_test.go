package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchemaValidatorAccepts(t *testing.T) {
	t.Parallel()
	validator := NewJSONSchemaValidator()
	require.NoError(t, validator.Validate(testSnapshot()))
}

func TestJSONSchemaValidatorRejectsNil(t *testing.T) {
	t.Parallel()
	validator := NewJSONSchemaValidator()
	assert.Error(t, validator.Validate(nil))
}

func TestJSONSchemaValidatorRejectsBadDateKeys(t *testing.T) {
	t.Parallel()
	snap := testSnapshot()
	movie := snap.Movies["m1"]
	movie.DailyGross = map[string]float64{"Jan 2 2026": 450}
	snap.Movies["m1"] = movie

	validator := NewJSONSchemaValidator()
	assert.Error(t, validator.Validate(snap), "date keys must be zero-padded YYYY-MM-DD")
}

func TestJSONSchemaValidatorRejectsNegativeBudget(t *testing.T) {
	t.Parallel()
	snap := testSnapshot()
	movie := snap.Movies["m1"]
	movie.Budget = -5
	snap.Movies["m1"] = movie

	validator := NewJSONSchemaValidator()
	assert.Error(t, validator.Validate(snap))
}

func TestJSONSchemaValidatorAllowsSparseSeries(t *testing.T) {
	t.Parallel()
	snap := &Snapshot{
		Movies: map[string]Movie{
			"m1": {Title: "No Gross Yet", ReleaseDate: UnreleasedSentinel},
		},
		Owners: map[string]OwnerTotals{"Alice": {}},
	}
	validator := NewJSONSchemaValidator()
	assert.NoError(t, validator.Validate(snap))
}
