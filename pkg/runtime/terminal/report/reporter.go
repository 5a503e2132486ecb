package report

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/isteps/burnout-risk/pkg/models/domain"
)

const dayLayout = "2006-01-02"

type RiskReport struct {
	Source string
	Period *domain.TimePeriod
	Result *domain.BurnoutRiskResult
}

type WeeklyReport struct {
	Source  string
	Summary domain.WeeklySummary
	MinDays int
}

type TrendReport struct {
	Source string
	Trend  domain.Trend
}

type ActivityReport struct {
	Source    string
	Summary   domain.ActivitySummary
	ShareText string
}

type StatsReport struct {
	User  string
	Stats *domain.RecordStats
}

const riskTemplate = `
Burnout Risk ({{.Source}})
{{with .Period}}Period: {{day .Start}} to {{day .End}} ({{.Duration}} days)
{{end}}{{with .Result}}Total Steps: {{.TotalSteps}}
Risk Score: {{.Score}} ({{.Label}})
Confidence: {{.Confidence}}%
{{else}}No step data available.
{{end}}`

const weeklyTemplate = `
Weekly Summary ({{.Source}})
{{if .Summary.Insufficient}}Only {{.Summary.ScoredDays}} scored day(s) in the last week. Record steps on at least {{.MinDays}} days for a reliable trend.
{{end}}{{if gt .Summary.ScoredDays 0}}Scored Days: {{.Summary.ScoredDays}}
Average Score: {{.Summary.AverageScore}}
Trend: {{.Summary.DeltaText}}
{{end}}{{.Summary.Narrative}}
`

const trendTemplate = `
Risk Trend ({{.Source}})
{{if .Trend.HasData}}{{with .Trend.Latest}}Latest: {{day .Day}} score {{score .Score}} ({{label .Label}})
{{end}}7-day Average: {{.Trend.AverageScore}}
7-day Change: {{delta .Trend.Delta}}

=== Recent Days ===
{{range .Trend.Recent}}- {{day .Day}}: {{.StepsThatDay}} steps, score {{score .Score}}{{if .Label}} ({{label .Label}}){{end}}
{{end}}{{else}}No scored days yet.
{{end}}`

const activityTemplate = `
Activity ({{.Source}})
{{if .Summary.HasData}}{{.ShareText}}
{{else}}No activity recorded.
{{end}}`

const statsTemplate = `
Step Records ({{.User}})
Records: {{.Stats.RecordsCount}}
{{with .Stats.FirstRecordTime}}First Record: {{.Format "2006-01-02 15:04"}}
{{end}}{{with .Stats.LastRecordTime}}Last Record: {{.Format "2006-01-02 15:04"}}
{{end}}`

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer    io.Writer
	templates *template.Template
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}

	funcMap := template.FuncMap{
		"day": func(t time.Time) string {
			return t.Format(dayLayout)
		},
		"score": func(s *int) string {
			if s == nil {
				return "n/a"
			}
			return fmt.Sprint(*s)
		},
		"label": func(l *domain.RiskLabel) string {
			if l == nil {
				return ""
			}
			return string(*l)
		},
		"delta": domain.FormatDelta,
	}

	t := template.New("report").Funcs(funcMap)
	template.Must(t.New("risk").Parse(riskTemplate))
	template.Must(t.New("weekly").Parse(weeklyTemplate))
	template.Must(t.New("trend").Parse(trendTemplate))
	template.Must(t.New("activity").Parse(activityTemplate))
	template.Must(t.New("stats").Parse(statsTemplate))

	return &Reporter{writer: writer, templates: t}
}

func (c *Reporter) Risk(r RiskReport) error {
	return c.execute("risk", r)
}

func (c *Reporter) Weekly(r WeeklyReport) error {
	if r.MinDays == 0 {
		r.MinDays = domain.MinScoredDays
	}
	return c.execute("weekly", r)
}

func (c *Reporter) Trend(r TrendReport) error {
	return c.execute("trend", r)
}

func (c *Reporter) Activity(r ActivityReport) error {
	return c.execute("activity", r)
}

func (c *Reporter) Stats(r StatsReport) error {
	if r.Stats == nil {
		r.Stats = &domain.RecordStats{}
	}
	return c.execute("stats", r)
}

func (c *Reporter) execute(name string, data any) error {
	if err := c.templates.ExecuteTemplate(c.writer, name, data); err != nil {
		return fmt.Errorf("failed to render %s report: %w", name, err)
	}
	return nil
}
