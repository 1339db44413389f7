package importer

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backend/internal/model"
)

// Structural errors: these abort an import before any row is processed.
// Everything that goes wrong per row degrades to defaults or a skip count.
var (
	ErrNoRows          = errors.New("spreadsheet has no data rows")
	ErrUnknownCategory = errors.New("unknown category tag")
)

// RecordStore is the persistence collaborator for the ingestor. Insert must
// report a deduplication-index violation as model.ErrDuplicateShipment so
// duplicates can be counted instead of surfaced.
type RecordStore interface {
	Insert(ctx context.Context, rec *model.ShipmentRecord) error
}

// ImportOptions configures one import run. The zero value is a normal run.
type ImportOptions struct {
	// BatchTag groups records of this run; generated when empty.
	BatchTag string
	// DryRun resolves and counts every row without persisting anything.
	DryRun bool
	// ProgressEvery emits a progress callback after every N rows (default 500).
	ProgressEvery int
	// Progress, when set, is called with (processed, total) rows.
	Progress func(processed, total int)
}

// ImportSummary reports what one import run did. Headers echoes the first
// row's header strings so callers can diagnose alias mismatches when a file
// produces fewer records than expected.
type ImportSummary struct {
	Total      int      `json:"total"`
	Inserted   int      `json:"inserted"`
	Skipped    int      `json:"skipped"`
	Duplicates int      `json:"duplicates"` // subset of Skipped
	NoID       int      `json:"no_id"`
	BatchTag   string   `json:"batch_tag"`
	Headers    []string `json:"headers"`
}

// Ingestor normalizes parsed spreadsheet rows into ShipmentRecords and
// persists them one by one. It is stateless between runs.
type Ingestor struct {
	store RecordStore
}

func NewIngestor(store RecordStore) *Ingestor {
	return &Ingestor{store: store}
}

const defaultProgressEvery = 500

// Import runs the full pipeline over rows. Only structural problems (no
// rows, unknown category, cancellation) return an error; a bad cell or a
// failed insert never aborts the batch. On cancellation the summary reflects
// the rows processed so far and is returned alongside the context error.
func (in *Ingestor) Import(ctx context.Context, rows []*RawRow, category string, opts ImportOptions) (*ImportSummary, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	if !model.ValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	batchTag := opts.BatchTag
	if batchTag == "" {
		batchTag = uuid.NewString()
	}
	progressEvery := opts.ProgressEvery
	if progressEvery <= 0 {
		progressEvery = defaultProgressEvery
	}

	summary := &ImportSummary{
		BatchTag: batchTag,
		Headers:  rows[0].Headers(),
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		summary.Total++

		rec, ok := in.normalizeRow(row, category, batchTag)
		if !ok {
			summary.NoID++
			continue
		}

		if opts.DryRun {
			summary.Inserted++ // rows that would be inserted
		} else if err := in.store.Insert(ctx, rec); err != nil {
			summary.Skipped++
			if errors.Is(err, model.ErrDuplicateShipment) {
				summary.Duplicates++
			} else {
				log.Printf("import %s: row %d not persisted: %v", batchTag, i+1, err)
			}
		} else {
			summary.Inserted++
		}

		if opts.Progress != nil && (i+1)%progressEvery == 0 {
			opts.Progress(i+1, len(rows))
		}
	}

	if opts.Progress != nil {
		opts.Progress(summary.Total, len(rows))
	}
	return summary, nil
}

// fobStrip removes everything that is not a digit, dot or minus, so values
// like "$1,200.50" or "USD 840" survive decimal parsing.
var fobStrip = regexp.MustCompile(`[^0-9.\-]`)

// normalizeRow resolves all canonical fields of one row into a record. The
// second return value is false when the row has no usable identity and must
// be counted as no-id.
func (in *Ingestor) normalizeRow(row *RawRow, category, batchTag string) (*model.ShipmentRecord, bool) {
	cells := make(map[CanonicalField]Cell, len(canonicalFields))
	for _, f := range canonicalFields {
		cells[f] = ResolveField(row, f)
	}

	exporter := strings.ToUpper(cells[FieldExporterName].String())
	consignee := strings.ToUpper(cells[FieldConsigneeName].String())
	product := cells[FieldProductDescription].String()

	quantity, err := decimal.NewFromString(cells[FieldQuantity].String())
	if err != nil {
		quantity = decimal.Zero
	}
	fob, err := decimal.NewFromString(fobStrip.ReplaceAllString(cells[FieldFobValue].String(), ""))
	if err != nil {
		fob = decimal.Zero
	}

	rec := &model.ShipmentRecord{
		ExporterName:         exporter,
		ConsigneeName:        consignee,
		ProductDescription:   product,
		Category:             category,
		HsCode:               cells[FieldHsCode].String(),
		Quantity:             quantity,
		FobValue:             fob,
		Unit:                 cells[FieldUnit].String(),
		Currency:             cells[FieldCurrency].String(),
		PortOfLoading:        cells[FieldPortOfLoading].String(),
		PortOfDischarge:      cells[FieldPortOfDischarge].String(),
		CountryOfDestination: cells[FieldCountryOfDestination].String(),
		BatchTag:             batchTag,
	}
	if rec.Unit == "" {
		rec.Unit = "KGS"
	}
	if rec.Currency == "" {
		rec.Currency = "USD"
	}

	rawDate := cells[FieldShipmentDate]
	if date, ok := ParseShipmentDate(rawDate); ok {
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		bucket := MonthBucket(date)
		rec.ShipmentDate = &day
		rec.MonthYear = &bucket
	}

	rec.IdentityKey = cells[FieldDeclarationID].String()
	if rec.IdentityKey == "" {
		key, ok := synthesizeKey(exporter, consignee, product, rawDate.String(), fob.String())
		if !ok {
			return nil, false
		}
		rec.IdentityKey = key
	}
	return rec, true
}

// compositeDelimiter joins the fallback-identity fields.
const compositeDelimiter = "-"

// synthesizeKey derives an identity key for a row with no declaration id.
// The composite is hashed rather than truncated so distinct composites never
// collide, and a short random suffix keeps intentionally re-entered identical
// shipments apart — such twins then stand or fall on the deduplication index,
// not on the key. A fully empty composite means the row has no identity at
// all and cannot be imported.
func synthesizeKey(exporter, consignee, product, rawDate, fob string) (string, bool) {
	composite := strings.Join([]string{exporter, consignee, product, rawDate, fob}, compositeDelimiter)
	degenerate := strings.Join([]string{"", "", "", "", "0"}, compositeDelimiter)
	if composite == degenerate {
		return "", false
	}

	sum := sha256.Sum256([]byte(composite))
	var suffix [4]byte
	_, _ = rand.Read(suffix[:])
	return base64.RawURLEncoding.EncodeToString(sum[:12]) + "-" + hex.EncodeToString(suffix[:]), true
}
