package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// Rule maps a keyword group to a category. When CategoryUSD is set and the
// transaction currency is USD, it takes precedence over Category.
type Rule struct {
	Keywords    []string `yaml:"keywords"`
	Category    string   `yaml:"category"`
	CategoryUSD string   `yaml:"category_usd,omitempty"`
}

// RuleSet is the ordered classification table, partitioned by transaction
// kind. Rules are evaluated top to bottom and the first match wins, so the
// order within each partition is part of the contract.
type RuleSet struct {
	Income  []Rule `yaml:"income"`
	Expense []Rule `yaml:"expense"`
	Default string `yaml:"default"`
}

// DefaultRules returns the built-in classification table for Chilean
// statements. A description matching both a tech-subscription brand and an
// entertainment brand resolves to "Servicios USD" because that group is
// listed first.
func DefaultRules() RuleSet {
	return RuleSet{
		Income: []Rule{
			{
				Keywords: []string{"sueldo", "salario", "remuneracion", "nomina"},
				Category: "Salario CLP",
			},
			{
				Keywords:    []string{"freelance", "honorarios", "servicios profesionales"},
				Category:    "Freelance CLP",
				CategoryUSD: "Freelance USD",
			},
			{
				Keywords: []string{"paypal", "transferencia internacional"},
				Category: "PayPal USD",
			},
		},
		Expense: []Rule{
			{
				Keywords: []string{
					"openai", "chatgpt", "claude", "anthropic", "github", "notion",
					"figma", "adobe", "canva", "zoom", "slack", "dropbox",
					"google workspace", "microsoft office", "aws", "azure",
					"heroku", "vercel",
				},
				Category: "Servicios USD",
			},
			{
				Keywords: []string{
					"spotify", "netflix", "disney", "prime video", "youtube",
					"apple music", "hbo",
				},
				Category: "Entretenimiento",
			},
			{
				Keywords: []string{
					"supermercado", "market", "jumbo", "lider", "santa isabel",
					"tottus", "unimarc", "lily", "acuenta", "restaurant", "cafe",
					"pizzeria",
				},
				Category: "Alimentación",
			},
			{
				Keywords: []string{"easy", "sodimac", "homecenter", "construmart", "homy"},
				Category: "Hogar",
			},
			{
				Keywords: []string{
					"uber", "taxi", "metro", "bus", "bencina", "copec", "shell",
					"esso", "petrobras",
				},
				Category: "Transporte",
			},
			{
				Keywords: []string{
					"luz", "agua", "gas", "telefono", "internet", "entel",
					"movistar", "claro", "vtr",
				},
				Category: "Servicios",
			},
			{
				Keywords: []string{
					"farmacia", "clinica", "hospital", "medico", "cruz verde",
					"salco", "ahumada",
				},
				Category: "Salud",
			},
		},
		Default: "Otros",
	}
}

// LoadRules reads a RuleSet override from a YAML file. Partitions or the
// default left empty in the file fall back to the built-in table.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("reading rules file: %w", err)
	}
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	defaults := DefaultRules()
	if len(rs.Income) == 0 {
		rs.Income = defaults.Income
	}
	if len(rs.Expense) == 0 {
		rs.Expense = defaults.Expense
	}
	if rs.Default == "" {
		rs.Default = defaults.Default
	}
	return rs, nil
}

// partition returns the rule list for a kind.
func (rs RuleSet) partition(kind models.Kind) []Rule {
	if kind == models.Income {
		return rs.Income
	}
	return rs.Expense
}
