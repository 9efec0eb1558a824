package spreadsheet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func TestReadRows(t *testing.T) {
	t.Run("should skip the header row", func(t *testing.T) {
		data := workbookBytes(t, [][]interface{}{
			{"Full name", "Preferred name"},
			{"Nakato Grace", "Grace"},
			{"Okello David", "David"},
		})

		rows, err := ReadRows(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"Nakato Grace", "Grace"}, rows[0])
		assert.Equal(t, []string{"Okello David", "David"}, rows[1])
	})

	t.Run("should pad rows with blank trailing cells to the sheet width", func(t *testing.T) {
		data := workbookBytes(t, [][]interface{}{
			{"Full name", "Preferred name", "Comment", "Compiled by"},
			{"Nakato Grace", "Grace", "", ""},
			{"Okello David", "David", "note", ""},
		})

		rows, err := ReadRows(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"Nakato Grace", "Grace", "", ""}, rows[0])
		assert.Equal(t, []string{"Okello David", "David", "note", ""}, rows[1])
	})

	t.Run("should return nothing for a header-only workbook", func(t *testing.T) {
		data := workbookBytes(t, [][]interface{}{
			{"Full name", "Preferred name"},
		})

		rows, err := ReadRows(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("should return nothing for an empty workbook", func(t *testing.T) {
		data := workbookBytes(t, nil)

		rows, err := ReadRows(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("should reject input that is not a workbook", func(t *testing.T) {
		rows, err := ReadRows(bytes.NewReader([]byte("name,age\nGrace,12\n")))
		assert.Nil(t, rows)
		assert.True(t, errors.Is(err, apperrors.ErrWorkbookMalformed))
	})

	t.Run("should read only the first sheet", func(t *testing.T) {
		f := excelize.NewFile()
		first := f.GetSheetName(0)
		row := []interface{}{"header"}
		require.NoError(t, f.SetSheetRow(first, "A1", &row))
		row = []interface{}{"first-sheet"}
		require.NoError(t, f.SetSheetRow(first, "A2", &row))

		_, err := f.NewSheet("Second")
		require.NoError(t, err)
		row = []interface{}{"second-sheet"}
		require.NoError(t, f.SetSheetRow("Second", "A1", &row))

		var buf bytes.Buffer
		require.NoError(t, f.Write(&buf))
		require.NoError(t, f.Close())

		rows, err := ReadRows(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "first-sheet", rows[0][0])
	})
}
