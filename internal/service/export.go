package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/models"
	"github.com/Dan9191/custlysis-dashboard/internal/utils"
)

var exportHeader = []string{
	"Transaction ID", "Account ID", "Type", "Amount", "Date", "Time",
	"Channel", "Category", "Location", "Score", "Recurring", "High Value",
}

// ExportFilename returns the download name of a transaction export made at now
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("transactions_%s.csv", now.Format("2006-01-02"))
}

// WriteTransactionsCSV writes txns as CSV with a header row
func WriteTransactionsCSV(w io.Writer, txns []models.Transaction) error {
	if len(txns) == 0 {
		return ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range txns {
		account := ""
		if t.AccountID != nil {
			account = strconv.FormatInt(*t.AccountID, 10)
		}
		record := []string{
			strconv.FormatInt(t.ID, 10),
			account,
			t.TxnType,
			t.Amount.String(),
			utils.FormatDate(t.Timestamp),
			utils.FormatClock(t.Timestamp),
			t.Channel,
			t.MerchantCategory,
			t.GeoLocation,
			strconv.FormatFloat(t.TxnScore, 'f', -1, 64),
			yesNo(t.IsRecurring),
			yesNo(t.IsHighValue),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportTransactions writes the session's transaction snapshot as CSV
func (s *Service) ExportTransactions(ctx context.Context, session string, w io.Writer) error {
	txns, err := cached(ctx, s, session, TabTransactions, s.repo.ListTransactions)
	if err != nil {
		return err
	}
	if err := WriteTransactionsCSV(w, txns); err != nil {
		return err
	}
	s.log.Infof("Exported %d transactions", len(txns))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
