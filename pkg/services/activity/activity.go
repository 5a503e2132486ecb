package activity

import (
	"fmt"
	"strings"

	"github.com/isteps/burnout-risk/pkg/models/domain"
)

const (
	stepsPerCalorie = 20
	stepsPerKm      = 2000.0
)

func Summarize(records []domain.StepRecord) domain.ActivitySummary {
	total := 0
	for _, r := range records {
		total += r.Count
	}

	return domain.ActivitySummary{
		TotalSteps: total,
		Calories:   total / stepsPerCalorie,
		DistanceKm: float64(total) / stepsPerKm,
		HasData:    total > 0,
	}
}

// ShareText renders the message shared from the activity dashboard.
func ShareText(s domain.ActivitySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚶 Total Steps: %d\n", s.TotalSteps)
	fmt.Fprintf(&b, "🏃 Distance: %.1f km\n", s.DistanceKm)
	fmt.Fprintf(&b, "🔥 Calories: %d kcal\n", s.Calories)
	b.WriteString("________________\n")
	b.WriteString("Sent with iSteps❤️")
	return b.String()
}
