package service

import (
	"context"
	"encoding/json"
	"fmt"

	"backend/internal/importer"
	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
	"backend/internal/xlsx"

	"github.com/google/uuid"
)

// UploadRequest carries one uploaded workbook through the import pipeline.
type UploadRequest struct {
	FileName string
	Data     []byte
	Category string
	DryRun   bool
	UserID   string
}

// UploadBatchResponse is one historical import run.
type UploadBatchResponse struct {
	BatchTag  string `json:"batch_tag"`
	FileName  string `json:"file_name"`
	Category  string `json:"category"`
	TotalRows int    `json:"total_rows"`
	Inserted  int    `json:"inserted"`
	Skipped   int    `json:"skipped"`
	NoID      int    `json:"no_id"`
	CreatedAt string `json:"created_at"`
}

type ImportService interface {
	// ImportWorkbook parses an uploaded xlsx file and runs the ingestion
	// pipeline over its rows. Structural problems (unreadable file, empty
	// sheet, unknown category) return an error; per-row problems are
	// absorbed into the summary.
	ImportWorkbook(ctx context.Context, req UploadRequest) (*importer.ImportSummary, error)
	ListUploads(ctx context.Context, page, limit int) ([]UploadBatchResponse, int64, error)
}

type importService struct {
	ingestor   *importer.Ingestor
	uploadRepo repository.UploadRepository
	auditRepo  repository.AuditRepository
	txManager  repository.TransactionManager
	hub        *ws.Hub
}

func NewImportService(
	shipmentRepo repository.ShipmentRepository,
	uploadRepo repository.UploadRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) ImportService {
	return &importService{
		ingestor:   importer.NewIngestor(shipmentRepo),
		uploadRepo: uploadRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
		hub:        hub,
	}
}

func (s *importService) ImportWorkbook(ctx context.Context, req UploadRequest) (*importer.ImportSummary, error) {
	if !model.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: %q", importer.ErrUnknownCategory, req.Category)
	}

	_, rows, err := xlsx.Read(req.Data)
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}

	batchTag := uuid.NewString()
	opts := importer.ImportOptions{
		BatchTag: batchTag,
		DryRun:   req.DryRun,
	}
	if s.hub != nil {
		opts.Progress = func(processed, total int) {
			s.hub.BroadcastProgress(ws.ImportProgress{
				BatchTag:  batchTag,
				Processed: processed,
				Total:     total,
			})
		}
	}

	summary, err := s.ingestor.Import(ctx, rows, req.Category, opts)
	if err != nil {
		return summary, err
	}

	if req.DryRun {
		return summary, nil
	}

	// Record the batch and audit entry together. The shipment inserts are
	// already committed row by row; this only covers the run's bookkeeping.
	var uid *uuid.UUID
	if parsed, parseErr := uuid.Parse(req.UserID); parseErr == nil {
		uid = &parsed
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		batch := &model.UploadBatch{
			BatchTag:   batchTag,
			FileName:   req.FileName,
			Category:   req.Category,
			TotalRows:  summary.Total,
			Inserted:   summary.Inserted,
			Skipped:    summary.Skipped,
			NoID:       summary.NoID,
			UploadedBy: uid,
		}
		if err := s.uploadRepo.Create(txCtx, batch); err != nil {
			return fmt.Errorf("record upload batch: %w", err)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"file_name": req.FileName,
			"category":  req.Category,
			"total":     summary.Total,
			"inserted":  summary.Inserted,
			"skipped":   summary.Skipped,
			"no_id":     summary.NoID,
		})
		audit := &model.AuditLog{
			UserID:     uid,
			Action:     model.ActionImportShipments,
			EntityID:   batchTag,
			EntityName: req.FileName,
			Details:    string(details),
		}
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	return summary, nil
}

func (s *importService) ListUploads(ctx context.Context, page, limit int) ([]UploadBatchResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	batches, total, err := s.uploadRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]UploadBatchResponse, 0, len(batches))
	for _, b := range batches {
		res = append(res, UploadBatchResponse{
			BatchTag:  b.BatchTag,
			FileName:  b.FileName,
			Category:  b.Category,
			TotalRows: b.TotalRows,
			Inserted:  b.Inserted,
			Skipped:   b.Skipped,
			NoID:      b.NoID,
			CreatedAt: b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return res, total, nil
}
