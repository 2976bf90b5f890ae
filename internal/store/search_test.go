package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

func TestFilterBySearchTerm(t *testing.T) {
	reports := []types.Report{
		{Title: "Alpha Report", Description: "monthly pricing summary"},
		{Title: "Beta Review", Description: "impairment deep dive"},
		{Title: "Gamma", Description: "alpha exposure analysis"},
	}

	t.Run("case-insensitive substring match", func(t *testing.T) {
		got := FilterBySearchTerm(reports, "alpha", ReportSearchFields)
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha Report", got[0].Title)
		assert.Equal(t, "Gamma", got[1].Title)
	})

	t.Run("matches when any field matches", func(t *testing.T) {
		got := FilterBySearchTerm(reports, "IMPAIRMENT", ReportSearchFields)
		require.Len(t, got, 1)
		assert.Equal(t, "Beta Review", got[0].Title)
	})

	t.Run("empty term returns input unchanged", func(t *testing.T) {
		got := FilterBySearchTerm(reports, "", ReportSearchFields)
		assert.Equal(t, reports, got)
		// Same elements, same order, same backing slice.
		assert.Equal(t, &reports[0], &got[0])
	})

	t.Run("no matches yields empty, not nil panic", func(t *testing.T) {
		got := FilterBySearchTerm(reports, "zeta", ReportSearchFields)
		assert.Empty(t, got)
	})
}

func TestFilterRequestsByRequester(t *testing.T) {
	requests := []types.Request{
		{Description: "rebuild model", Requester: "J. Kim"},
		{Description: "data pull", Requester: "A. Okafor"},
	}

	got := FilterBySearchTerm(requests, "kim", RequestSearchFields)
	require.Len(t, got, 1)
	assert.Equal(t, "rebuild model", got[0].Description)
}
