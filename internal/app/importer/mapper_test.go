package importer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullRow returns a 37-cell row with a distinct value in every column.
func fullRow() []string {
	cells := make([]string, ColumnCount)
	for i := range cells {
		cells[i] = fmt.Sprintf("cell-%d", i)
	}
	cells[colFullName] = "Nakato Grace"
	cells[colDateOfBirth] = "2012-03-15"
	cells[colWeight] = "31.5"
	cells[colHeight] = "132"
	cells[colInSchool] = "Yes"
	cells[colIsSponsored] = "No"
	cells[colFatherAlive] = "no"
	cells[colMotherAlive] = "1"
	cells[colYearEnrolled] = "2019"
	cells[colIsDeparted] = "false"
	return cells
}

func TestMapRow(t *testing.T) {
	t.Run("should skip row with empty first cell", func(t *testing.T) {
		cells := fullRow()
		cells[colFullName] = "   "

		mapped := MapRow(cells)
		assert.Equal(t, OutcomeSkipped, mapped.Outcome)
		assert.Nil(t, mapped.Draft)
	})

	t.Run("should skip zero-length row", func(t *testing.T) {
		mapped := MapRow(nil)
		assert.Equal(t, OutcomeSkipped, mapped.Outcome)
	})

	t.Run("should skip short row whose first cell is empty", func(t *testing.T) {
		// The skip rule wins over the width check.
		mapped := MapRow([]string{"", "something"})
		assert.Equal(t, OutcomeSkipped, mapped.Outcome)
	})

	t.Run("should reject short row that names a child", func(t *testing.T) {
		mapped := MapRow([]string{"Nakato Grace", "Grace"})
		assert.Equal(t, OutcomeInvalid, mapped.Outcome)
		assert.Equal(t, "short row: got 2 cells, want 37", mapped.Reason)
		assert.Nil(t, mapped.Draft)
	})

	t.Run("should copy every column positionally", func(t *testing.T) {
		mapped := MapRow(fullRow())
		require.Equal(t, OutcomeMapped, mapped.Outcome)
		require.NotNil(t, mapped.Draft)

		draft := mapped.Draft
		assert.Equal(t, "Nakato Grace", draft.FullName)
		assert.Equal(t, "cell-1", draft.PreferredName)
		assert.Equal(t, "cell-2", draft.Residence)
		assert.Equal(t, "cell-3", draft.Tribe)
		assert.Equal(t, "cell-4", draft.Gender)
		assert.Equal(t, "cell-8", draft.Avatar)
		assert.Equal(t, "cell-9", draft.Interest)
		assert.Equal(t, "cell-11", draft.SchoolName)
		assert.Equal(t, "cell-16", draft.SponsorshipType)
		assert.Equal(t, "cell-17", draft.FatherName)
		assert.Equal(t, "cell-23", draft.Guardian)
		assert.Equal(t, "cell-26", draft.Siblings)
		assert.Equal(t, "cell-31", draft.Religion)
		assert.Equal(t, "cell-35", draft.StaffComment)
		assert.Equal(t, "cell-36", draft.CompiledBy)
	})

	t.Run("should coerce typed columns", func(t *testing.T) {
		mapped := MapRow(fullRow())
		require.Equal(t, OutcomeMapped, mapped.Outcome)

		draft := mapped.Draft
		require.NotNil(t, draft.DateOfBirth)
		assert.Equal(t, time.Date(2012, 3, 15, 0, 0, 0, 0, time.UTC), *draft.DateOfBirth)
		require.NotNil(t, draft.Weight)
		assert.Equal(t, 31.5, *draft.Weight)
		require.NotNil(t, draft.Height)
		assert.Equal(t, 132.0, *draft.Height)
		require.NotNil(t, draft.InSchool)
		assert.True(t, *draft.InSchool)
		require.NotNil(t, draft.IsSponsored)
		assert.False(t, *draft.IsSponsored)
		require.NotNil(t, draft.FatherAlive)
		assert.False(t, *draft.FatherAlive)
		require.NotNil(t, draft.MotherAlive)
		assert.True(t, *draft.MotherAlive)
		require.NotNil(t, draft.YearEnrolled)
		assert.Equal(t, 2019, *draft.YearEnrolled)
		require.NotNil(t, draft.IsDeparted)
		assert.False(t, *draft.IsDeparted)
	})

	t.Run("should accept whole numbers formatted with a decimal point", func(t *testing.T) {
		cells := fullRow()
		cells[colYearEnrolled] = "2015.0"

		mapped := MapRow(cells)
		require.Equal(t, OutcomeMapped, mapped.Outcome)
		require.NotNil(t, mapped.Draft.YearEnrolled)
		assert.Equal(t, 2015, *mapped.Draft.YearEnrolled)
	})

	t.Run("should leave unparseable cells nil without failing the row", func(t *testing.T) {
		cells := fullRow()
		cells[colDateOfBirth] = "around 2012"
		cells[colWeight] = "heavy"
		cells[colInSchool] = "sometimes"
		cells[colYearEnrolled] = "2015.5"

		mapped := MapRow(cells)
		require.Equal(t, OutcomeMapped, mapped.Outcome)
		assert.Nil(t, mapped.Draft.DateOfBirth)
		assert.Nil(t, mapped.Draft.Weight)
		assert.Nil(t, mapped.Draft.InSchool)
		assert.Nil(t, mapped.Draft.YearEnrolled)
	})

	t.Run("should trim whitespace from text cells", func(t *testing.T) {
		cells := fullRow()
		cells[colFullName] = "  Nakato Grace  "
		cells[colTribe] = " Baganda "

		mapped := MapRow(cells)
		require.Equal(t, OutcomeMapped, mapped.Outcome)
		assert.Equal(t, "Nakato Grace", mapped.Draft.FullName)
		assert.Equal(t, "Baganda", mapped.Draft.Tribe)
	})

	t.Run("should accept rows wider than the schema", func(t *testing.T) {
		cells := append(fullRow(), "extra", "columns")

		mapped := MapRow(cells)
		assert.Equal(t, OutcomeMapped, mapped.Outcome)
	})
}

func TestParseDateLayouts(t *testing.T) {
	for _, cell := range []string{"2012-03-15", "3/15/2012", "2012/03/15", "Mar 15, 2012", "15 Mar 2012"} {
		parsed := parseDate(cell)
		require.NotNil(t, parsed, "layout for %q", cell)
		assert.Equal(t, 2012, parsed.Year())
	}
	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not a date"))
}
