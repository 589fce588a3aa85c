package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	names := []string{"Email", "FullName", "full_name", "Phone"}

	ranked := Rank("FullName", names)

	assert.Len(t, ranked, 4)
	// exact and separator-equivalent names tie at 1.0, alphabetical tie break
	assert.Equal(t, "FullName", ranked[0].Name)
	assert.Equal(t, "full_name", ranked[1].Name)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.001)
	assert.InDelta(t, 1.0, ranked[1].Score, 0.001)
	assert.Less(t, ranked[2].Score, 1.0)
}

func TestSuggest(t *testing.T) {
	names := []string{"CustomerID", "Email", "CustomerName", "Zip"}

	assert.Equal(t, []string{"CustomerName"}, Suggest("customer_name", names, 1))
	assert.Nil(t, Suggest("Quantity", names, 3))
	assert.Nil(t, Suggest("Email", nil, 3))
}

func TestCandidates_Top(t *testing.T) {
	c := Candidates{{Name: "a", Score: 1}, {Name: "b", Score: 0.5}}

	assert.Len(t, c.Top(1), 1)
	assert.Len(t, c.Top(5), 2)
	assert.Empty(t, c.Top(-1))
	assert.Equal(t, []string{"a"}, c.AboveThreshold(0.9).Names())
}
