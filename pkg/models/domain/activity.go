package domain

type ActivitySummary struct {
	TotalSteps int
	Calories   int     // kcal
	DistanceKm float64 // km
	HasData    bool
}
