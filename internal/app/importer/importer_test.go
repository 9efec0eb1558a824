package importer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/db"
	"github.com/xuri/excelize/v2"
)

// fakeTxRunner runs the unit of work without a database. When the work
// returns an error the staged rows are discarded, mirroring a rollback.
type fakeTxRunner struct {
	store *fakeChildStore
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.store.staged = nil
	if err := fn(ctx, nil); err != nil {
		f.store.staged = nil
		return err
	}
	f.store.children = append(f.store.children, f.store.staged...)
	f.store.staged = nil
	return nil
}

// fakeChildStore stages inserts until the surrounding transaction commits.
type fakeChildStore struct {
	children []*models.Child
	staged   []*models.Child
	failAt   int // 1-based insert index that fails, 0 means never
	calls    int
}

func (f *fakeChildStore) CreateChildTx(ctx context.Context, tx pgx.Tx, child *models.Child) (int64, error) {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return 0, errors.New("insert failed")
	}
	f.staged = append(f.staged, child)
	return int64(f.calls), nil
}

func newTestImporter() (*Importer, *fakeChildStore) {
	store := &fakeChildStore{}
	return New(&fakeTxRunner{store: store}, store), store
}

// buildWorkbook writes an xlsx with a header row followed by the given
// data rows and returns its raw bytes.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, ColumnCount)
	for i := range header {
		header[i] = "header"
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func dataRow(name string) []interface{} {
	row := make([]interface{}, ColumnCount)
	for i := range row {
		row[i] = "x"
	}
	row[colFullName] = name
	return row
}

func TestImportChildren(t *testing.T) {
	ctx := context.Background()

	t.Run("should import every named row", func(t *testing.T) {
		imp, store := newTestImporter()
		workbook := buildWorkbook(t, [][]interface{}{
			dataRow("Nakato Grace"),
			dataRow("Okello David"),
			dataRow("Auma Faith"),
		})

		result, err := imp.ImportChildren(ctx, bytes.NewReader(workbook))
		require.NoError(t, err)
		assert.Equal(t, 3, result.Imported)
		assert.Equal(t, 0, result.Skipped)
		assert.Empty(t, result.Invalid)

		require.Len(t, store.children, 3)
		assert.Equal(t, "Nakato Grace", store.children[0].FullName)
		assert.Equal(t, "Okello David", store.children[1].FullName)
		assert.Equal(t, "Auma Faith", store.children[2].FullName)
	})

	t.Run("should import a row whose trailing cells are blank", func(t *testing.T) {
		imp, store := newTestImporter()
		row := dataRow("Nakato Grace")
		row[colStaffComment] = ""
		row[colCompiledBy] = ""
		workbook := buildWorkbook(t, [][]interface{}{row})

		result, err := imp.ImportChildren(ctx, bytes.NewReader(workbook))
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Empty(t, result.Invalid)

		require.Len(t, store.children, 1)
		assert.Equal(t, "Nakato Grace", store.children[0].FullName)
		assert.Empty(t, store.children[0].StaffComment)
		assert.Empty(t, store.children[0].CompiledBy)
	})

	t.Run("should skip rows with an empty first cell", func(t *testing.T) {
		imp, store := newTestImporter()
		workbook := buildWorkbook(t, [][]interface{}{
			dataRow("Nakato Grace"),
			dataRow(""),
			dataRow("Auma Faith"),
		})

		result, err := imp.ImportChildren(ctx, bytes.NewReader(workbook))
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 1, result.Skipped)
		assert.Len(t, store.children, 2)
	})

	t.Run("should report invalid rows without aborting", func(t *testing.T) {
		imp, store := newTestImporter()
		short := []interface{}{"Named But Short", "only two cells"}
		workbook := buildWorkbook(t, [][]interface{}{
			dataRow("Nakato Grace"),
			short,
			dataRow("Auma Faith"),
		})

		result, err := imp.ImportChildren(ctx, bytes.NewReader(workbook))
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		require.Len(t, result.Invalid, 1)
		assert.Equal(t, 1, result.Invalid[0].Row)
		assert.Contains(t, result.Invalid[0].Reason, "short row")
		assert.Len(t, store.children, 2)
	})

	t.Run("should roll back the whole file on a persistence failure", func(t *testing.T) {
		imp, store := newTestImporter()
		store.failAt = 2
		workbook := buildWorkbook(t, [][]interface{}{
			dataRow("Nakato Grace"),
			dataRow("Okello David"),
			dataRow("Auma Faith"),
		})

		result, err := imp.ImportChildren(ctx, bytes.NewReader(workbook))
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, store.children, "no row of a failed file may persist")
	})

	t.Run("should import the same file twice without de-duplicating", func(t *testing.T) {
		imp, store := newTestImporter()
		workbook := buildWorkbook(t, [][]interface{}{
			dataRow("Nakato Grace"),
		})

		_, err := imp.ImportChildren(ctx, bytes.NewReader(workbook))
		require.NoError(t, err)
		_, err = imp.ImportChildren(ctx, bytes.NewReader(workbook))
		require.NoError(t, err)

		assert.Len(t, store.children, 2)
	})

	t.Run("should handle a workbook with only a header", func(t *testing.T) {
		imp, store := newTestImporter()
		workbook := buildWorkbook(t, nil)

		result, err := imp.ImportChildren(ctx, bytes.NewReader(workbook))
		require.NoError(t, err)
		assert.Equal(t, 0, result.Imported)
		assert.Empty(t, store.children)
	})

	t.Run("should reject a malformed workbook", func(t *testing.T) {
		imp, _ := newTestImporter()

		result, err := imp.ImportChildren(ctx, bytes.NewReader([]byte("not a workbook")))
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
