package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/flockbook/internal/config"
	"github.com/mamadbah2/flockbook/internal/domain/models"
)

const recordsWriteRange = "DailyRecords!A:N"

// Exporter mirrors appended daily records into an external spreadsheet.
type Exporter interface {
	AppendRecordRow(ctx context.Context, record models.DailyRecord) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRecordRow appends one daily record as a spreadsheet row.
func (e *GoogleSheetExporter) AppendRecordRow(ctx context.Context, record models.DailyRecord) error {
	values := []interface{}{
		record.Date,
		record.EggsCollected,
		record.EggsBroken,
		record.EggsSpoilt,
		record.EggsSold,
		record.EggPrice,
		record.FowlDeaths,
		record.NewHatches,
		record.FeedConsumed,
		record.FeedCost,
		record.MedicationGiven,
		record.MedicationDetails,
		record.DisinfectionDone,
		record.DailyCheckNotes,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, recordsWriteRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append record row for %s: %w", record.Date, err)
	}

	e.logger.Debug("record row appended to sheet", zap.String("date", record.Date), zap.String("record_id", record.ID))
	return nil
}
