package cache

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchKey_Format(t *testing.T) {
	assert.Equal(t, "search:40.416700:-3.703700:500", SearchKey(40.4167, -3.7037, 500))
}

func TestCompetitorsKey_Format(t *testing.T) {
	assert.Equal(t, "search:biz_001:40.416700:-3.703700:500", CompetitorsKey("biz_001", 40.4167, -3.7037, 500))
}

func TestSearchKey_CanonicalizesTextualVariants(t *testing.T) {
	// "40.4167" and "40.41670" are the same coordinate; both must land on
	// the same cache key once parsed.
	v1, err := strconv.ParseFloat("40.4167", 64)
	require.NoError(t, err)
	v2, err := strconv.ParseFloat("40.41670", 64)
	require.NoError(t, err)

	assert.Equal(t, SearchKey(v1, -3.7037, 500), SearchKey(v2, -3.7037, 500))
}

func TestSearchKey_DistinctParams(t *testing.T) {
	base := SearchKey(40.4167, -3.7037, 500)
	assert.NotEqual(t, base, SearchKey(40.4168, -3.7037, 500))
	assert.NotEqual(t, base, SearchKey(40.4167, -3.7038, 500))
	assert.NotEqual(t, base, SearchKey(40.4167, -3.7037, 501))
}
