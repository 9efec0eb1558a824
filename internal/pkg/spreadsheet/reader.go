package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// ReadRows opens an xlsx workbook, takes its first sheet and returns the
// data rows in order as string cells, with the header row (row 0) skipped.
// excelize trims trailing empty cells per row, so every returned row is
// padded back to the sheet's widest row. A row that ends in blank cells
// therefore keeps the sheet's full width; only a sheet that is narrow as
// a whole yields short rows.
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrWorkbookMalformed, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrWorkbookMalformed)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrWorkbookMalformed, err)
	}

	// Row 0 is the header.
	if len(rows) <= 1 {
		return nil, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	data := rows[1:]
	for i, row := range data {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			data[i] = padded
		}
	}
	return data, nil
}
