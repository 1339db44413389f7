package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"backend/internal/importer"
	"backend/internal/model"
	"backend/internal/repository"
)

type fakeShipmentRepo struct {
	records []*model.ShipmentRecord
}

func (r *fakeShipmentRepo) Insert(_ context.Context, rec *model.ShipmentRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeShipmentRepo) List(context.Context, repository.ShipmentFilter, int, int) ([]model.ShipmentRecord, int64, error) {
	return nil, 0, nil
}

type fakeUploadRepo struct {
	batches []*model.UploadBatch
}

func (r *fakeUploadRepo) Create(_ context.Context, batch *model.UploadBatch) error {
	r.batches = append(r.batches, batch)
	return nil
}

func (r *fakeUploadRepo) List(context.Context, int, int) ([]model.UploadBatch, int64, error) {
	out := make([]model.UploadBatch, 0, len(r.batches))
	for _, b := range r.batches {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUploadRepo) GetByTag(context.Context, string) (*model.UploadBatch, error) {
	return nil, nil
}

type fakeAuditRepo struct {
	entries []*model.AuditLog
}

func (r *fakeAuditRepo) Log(_ context.Context, entry *model.AuditLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditRepo) List(context.Context, int, int) ([]model.AuditLog, int64, error) {
	return nil, 0, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func newTestImportService() (ImportService, *fakeShipmentRepo, *fakeUploadRepo, *fakeAuditRepo) {
	shipments := &fakeShipmentRepo{}
	uploads := &fakeUploadRepo{}
	audits := &fakeAuditRepo{}
	svc := NewImportService(shipments, uploads, audits, fakeTxManager{}, nil)
	return svc, shipments, uploads, audits
}

func TestImportWorkbook(t *testing.T) {
	svc, shipments, uploads, audits := newTestImportService()

	data := workbookBytes(t, [][]interface{}{
		{"SB No", "Exporter", "Consignee", "Product Description", "FOB (USD)", "Date"},
		{"SB-1", "ACME EXPORTS", "FRESH FOODS BV", "Fresh Mangoes", "1200.50", 45312},
		{"SB-2", "ZETA TRADING", "GREEN GROCERS", "Bananas", "940", 45313},
	})

	summary, err := svc.ImportWorkbook(context.Background(), UploadRequest{
		FileName: "fruits-jan.xlsx",
		Data:     data,
		Category: model.CategoryFruits,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Inserted)
	require.Len(t, shipments.records, 2)
	assert.Equal(t, "ACME EXPORTS", shipments.records[0].ExporterName)

	require.Len(t, uploads.batches, 1)
	batch := uploads.batches[0]
	assert.Equal(t, summary.BatchTag, batch.BatchTag)
	assert.Equal(t, "fruits-jan.xlsx", batch.FileName)
	assert.Equal(t, model.CategoryFruits, batch.Category)
	assert.Equal(t, 2, batch.Inserted)

	require.Len(t, audits.entries, 1)
	assert.Equal(t, model.ActionImportShipments, audits.entries[0].Action)
	assert.Equal(t, summary.BatchTag, audits.entries[0].EntityID)
}

func TestImportWorkbook_UnknownCategory(t *testing.T) {
	svc, shipments, _, _ := newTestImportService()

	_, err := svc.ImportWorkbook(context.Background(), UploadRequest{
		FileName: "f.xlsx",
		Data:     []byte("ignored"),
		Category: "furniture",
	})
	assert.ErrorIs(t, err, importer.ErrUnknownCategory)
	assert.Empty(t, shipments.records)
}

func TestImportWorkbook_CorruptFile(t *testing.T) {
	svc, _, uploads, _ := newTestImportService()

	_, err := svc.ImportWorkbook(context.Background(), UploadRequest{
		FileName: "broken.xlsx",
		Data:     []byte("not a workbook"),
		Category: model.CategoryFruits,
	})
	assert.Error(t, err)
	assert.Empty(t, uploads.batches)
}

func TestImportWorkbook_EmptySheet(t *testing.T) {
	svc, _, _, _ := newTestImportService()

	data := workbookBytes(t, [][]interface{}{
		{"SB No", "Exporter"},
	})
	_, err := svc.ImportWorkbook(context.Background(), UploadRequest{
		FileName: "empty.xlsx",
		Data:     data,
		Category: model.CategoryFruits,
	})
	assert.ErrorIs(t, err, importer.ErrNoRows)
}

func TestImportWorkbook_DryRun(t *testing.T) {
	svc, shipments, uploads, audits := newTestImportService()

	data := workbookBytes(t, [][]interface{}{
		{"SB No", "Exporter"},
		{"SB-1", "ACME"},
	})
	summary, err := svc.ImportWorkbook(context.Background(), UploadRequest{
		FileName: "f.xlsx",
		Data:     data,
		Category: model.CategoryFruits,
		DryRun:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
	assert.Empty(t, shipments.records, "dry run persists nothing")
	assert.Empty(t, uploads.batches, "dry run records no batch")
	assert.Empty(t, audits.entries, "dry run writes no audit entry")
}

func TestListUploads(t *testing.T) {
	svc, _, uploads, _ := newTestImportService()
	uploads.batches = append(uploads.batches, &model.UploadBatch{
		BatchTag:  "tag-1",
		FileName:  "a.xlsx",
		Category:  model.CategorySpices,
		TotalRows: 7,
		Inserted:  6,
		Skipped:   1,
	})

	res, total, err := svc.ListUploads(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, res, 1)
	assert.Equal(t, "tag-1", res[0].BatchTag)
	assert.Equal(t, 6, res[0].Inserted)
}
