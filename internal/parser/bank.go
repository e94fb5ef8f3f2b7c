package parser

import (
	"strings"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// bankKeywords pairs a bank label with the substrings that identify it.
type bankKeywords struct {
	label    models.BankLabel
	keywords []string
}

// bankTable is scanned in order and the first entry with any keyword
// present wins, so when a statement mentions several institutions the
// earlier-listed bank takes priority. The order is part of the contract.
var bankTable = []bankKeywords{
	{models.BankSantander, []string{"santander", "worldmember", "estado de cuenta en moneda nacional"}},
	{models.BankBCI, []string{"bci", "banco de credito", "banco credito inversiones"}},
	{models.BankChile, []string{"banco de chile", "bch", "cuenta corriente banco chile"}},
	{models.BankEstado, []string{"bancoestado", "banco estado", "cuenta rut"}},
	{models.BankItau, []string{"itau", "itaú", "banco itau"}},
	{models.BankFalabella, []string{"cmr", "falabella", "tarjeta cmr"}},
	{models.BankRipley, []string{"ripley", "tarjeta ripley"}},
	{models.BankPayPal, []string{"paypal", "payment received", "payment sent"}},
}

// DetectBank classifies a whole statement to a bank label. It is a pure
// function of the text and the keyword table; unknown statements map to
// the generic label, never an error.
func DetectBank(text string) models.BankLabel {
	lower := strings.ToLower(text)
	for _, entry := range bankTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.label
			}
		}
	}
	return models.BankGeneric
}
