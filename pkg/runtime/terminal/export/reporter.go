package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/isteps/burnout-risk/pkg/models/domain"
)

type TableConfig struct {
	DayWidth   int
	StepsWidth int
	ScoreWidth int
	LabelWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		DayWidth:   10,
		StepsWidth: 8,
		ScoreWidth: 5,
		LabelWidth: 8,
	}
}

// SeriesReport is a daily risk series rendered as a fixed-width table.
type SeriesReport struct {
	Source string
	Period *domain.TimePeriod
	Points []domain.RiskPoint
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report SeriesReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(day string, steps any, score any, label string) string {
			return fmt.Sprintf("| %-*s | %*v | %*v | %-*s |",
				c.config.DayWidth, day,
				c.config.StepsWidth, steps,
				c.config.ScoreWidth, score,
				c.config.LabelWidth, label)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.DayWidth+2),
				strings.Repeat("-", c.config.StepsWidth+2),
				strings.Repeat("-", c.config.ScoreWidth+2),
				strings.Repeat("-", c.config.LabelWidth+2))
		},
		"day": func(p domain.RiskPoint) string {
			return p.Day.Format("2006-01-02")
		},
		"score": func(p domain.RiskPoint) string {
			if p.Score == nil {
				return "-"
			}
			return fmt.Sprint(*p.Score)
		},
		"label": func(p domain.RiskPoint) string {
			if p.Label == nil {
				return ""
			}
			return string(*p.Label)
		},
	}

	tmpl := `
Daily Risk Series ({{.Source}})
{{with .Period}}Period: {{.Start.Format "2006-01-02"}} to {{.End.Format "2006-01-02"}} ({{.Duration}} days)
{{end}}
{{separator}}
{{formatRow "Day" "Steps" "Score" "Label"}}
{{separator}}
{{range .Points}}{{formatRow (day .) .StepsThatDay (score .) (label .)}}
{{end}}{{separator}}
`

	t, err := template.New("series").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
