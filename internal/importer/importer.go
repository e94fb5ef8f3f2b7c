// Package importer orchestrates a statement import: text extraction, bank
// detection, draft extraction and category classification.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Wilfredo1970/Finanzas/internal/classifier"
	"github.com/Wilfredo1970/Finanzas/internal/extractor"
	"github.com/Wilfredo1970/Finanzas/internal/models"
	"github.com/Wilfredo1970/Finanzas/internal/parser"
)

// ErrNoTransactions is returned when a non-empty document yields zero
// drafts. Callers surface it to the user with guidance instead of
// treating the import as a silent success.
var ErrNoTransactions = errors.New(
	"no se detectaron transacciones válidas: verifique que el texto contenga fechas (DD/MM/YYYY o similar), descripciones de comercios y montos con $ o números, o intente pegar el texto manualmente")

// Result is the outcome of one import operation.
type Result struct {
	Bank   models.BankLabel          `json:"bank"`
	Drafts []models.TransactionDraft `json:"drafts"`
}

// Service runs the import pipeline. Extraction itself never assigns a
// transaction kind; the kind passed here is an explicit caller decision
// applied to every draft of the document.
type Service struct {
	classifier *classifier.Classifier
	log        zerolog.Logger
}

// New creates an import Service.
func New(c *classifier.Classifier, log zerolog.Logger) *Service {
	return &Service{classifier: c, log: log}
}

// ProcessText converts a statement text blob into classified drafts.
func (s *Service) ProcessText(text string, kind models.Kind) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, fmt.Errorf("empty statement text")
	}

	bank := parser.DetectBank(text)
	drafts := parser.Extract(text)

	s.log.Info().
		Str("bank", string(bank)).
		Int("drafts", len(drafts)).
		Msg("statement processed")

	if len(drafts) == 0 {
		return Result{Bank: bank}, ErrNoTransactions
	}

	for i := range drafts {
		drafts[i].Kind = kind
		s.classifier.Apply(&drafts[i], kind)
	}
	return Result{Bank: bank, Drafts: drafts}, nil
}

// ProcessPDF extracts text from a statement PDF and processes it.
func (s *Service) ProcessPDF(path string, kind models.Kind) (Result, error) {
	text, err := extractor.ExtractTextCombined(path)
	if err != nil {
		return Result{}, err
	}
	return s.ProcessText(text, kind)
}
