// Package api exposes the import pipeline and the ledger over HTTP.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Wilfredo1970/Finanzas/internal/importer"
	"github.com/Wilfredo1970/Finanzas/internal/ledger"
	"github.com/Wilfredo1970/Finanzas/internal/models"
	"github.com/Wilfredo1970/Finanzas/internal/writer"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Server wires the HTTP routes to the ledger and the import service.
type Server struct {
	app       *fiber.App
	ledger    *ledger.Ledger
	importer  *importer.Service
	backupDir string
	log       zerolog.Logger
}

// New builds the fiber application with all routes registered.
func New(lg *ledger.Ledger, imp *importer.Service, backupDir string, log zerolog.Logger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             32 << 20,
		DisableStartupMessage: true,
	})
	s := &Server{app: app, ledger: lg, importer: imp, backupDir: backupDir, log: log}
	s.routes()
	return s
}

// App returns the underlying fiber application, used by tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves the API on addr until the process exits.
func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("http server listening")
	return s.app.Listen(addr)
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Post("/import", s.handleImport)
	api.Get("/transactions", s.handleListTransactions)
	api.Post("/transactions", s.handleCreateTransaction)
	api.Delete("/transactions/:id", s.handleDeleteTransaction)
	api.Get("/rates", s.handleGetRates)
	api.Put("/rates", s.handleSetRate)
	api.Get("/reports/monthly", s.handleMonthlyReport)
	api.Get("/reports/categories", s.handleCategoryReport)
	api.Get("/export/csv", s.handleExportCSV)
	api.Post("/backup", s.handleBackup)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
	})
}

type importRequest struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// handleImport accepts either a statement PDF under the multipart field
// "file" (with an optional "kind" field) or a JSON body with pasted
// statement text. It returns classified drafts; nothing is stored until
// the client confirms them via POST /api/transactions.
func (s *Server) handleImport(c *fiber.Ctx) error {
	if file, err := c.FormFile("file"); err == nil {
		if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
			return errorJSON(c, fiber.StatusBadRequest, "only PDF files are supported")
		}
		kind := models.ParseKind(c.FormValue("kind"))

		tmp := filepath.Join(os.TempDir(), fmt.Sprintf("statement-%d.pdf", time.Now().UnixNano()))
		if err := c.SaveFile(file, tmp); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "failed to save uploaded file")
		}
		defer os.Remove(tmp)

		res, err := s.importer.ProcessPDF(tmp, kind)
		return s.importResponse(c, res, err)
	}

	var req importRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return errorJSON(c, fiber.StatusBadRequest,
			"provide a PDF under form field 'file' or a JSON body with 'text'")
	}
	res, err := s.importer.ProcessText(req.Text, models.ParseKind(req.Kind))
	return s.importResponse(c, res, err)
}

func (s *Server) importResponse(c *fiber.Ctx, res importer.Result, err error) error {
	if errors.Is(err, importer.ErrNoTransactions) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"bank":    res.Bank,
		})
	}
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	// nil marshals to JSON null, not [].
	if res.Drafts == nil {
		res.Drafts = []models.TransactionDraft{}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"bank":    res.Bank,
		"count":   len(res.Drafts),
		"drafts":  res.Drafts,
	})
}

func (s *Server) handleListTransactions(c *fiber.Ctx) error {
	if kind := c.Query("kind"); kind != "" {
		return c.JSON(s.ledger.List(models.ParseKind(kind)))
	}
	return c.JSON(fiber.Map{
		"incomes":  s.ledger.List(models.Income),
		"expenses": s.ledger.List(models.Expense),
	})
}

func (s *Server) handleCreateTransaction(c *fiber.Ctx) error {
	var draft models.TransactionDraft
	if err := c.BodyParser(&draft); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid JSON body: "+err.Error())
	}

	txn, err := s.ledger.Append(draft, models.ParseKind(string(draft.Kind)))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	if err := s.ledger.Save(); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	s.log.Info().Str("id", txn.ID).Str("kind", string(txn.Kind)).Msg("transaction stored")
	return c.Status(fiber.StatusCreated).JSON(txn)
}

func (s *Server) handleDeleteTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.ledger.Remove(id); err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}
	if err := s.ledger.Save(); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) handleGetRates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mainCurrency": s.ledger.MainCurrency(),
		"rates":        s.ledger.Rates(),
	})
}

type rateRequest struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

func (s *Server) handleSetRate(c *fiber.Ctx) error {
	var req rateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid JSON body: "+err.Error())
	}
	if err := s.ledger.SetRate(models.ParseCurrency(req.Currency), req.Rate); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	if err := s.ledger.Save(); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "rates": s.ledger.Rates()})
}

func (s *Server) handleMonthlyReport(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	if len(month) != 7 || month[4] != '-' {
		return errorJSON(c, fiber.StatusBadRequest, "month must be YYYY-MM")
	}
	return c.JSON(fiber.Map{
		"summary": s.ledger.Monthly(month),
		"report":  s.ledger.MonthlyText(month),
	})
}

func (s *Server) handleCategoryReport(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"breakdown": s.ledger.ByCategory(),
		"report":    s.ledger.ByCategoryText(),
	})
}

func (s *Server) handleExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := writer.Write(&buf, s.ledger.All()); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transacciones.csv"`)
	return c.SendString(buf.String())
}

func (s *Server) handleBackup(c *fiber.Ctx) error {
	path, err := s.ledger.Backup(s.backupDir)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	s.log.Info().Str("path", path).Msg("backup written")
	return c.JSON(fiber.Map{"success": true, "path": path})
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}
