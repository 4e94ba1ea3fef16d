package pipeline

import (
	"github.com/go-gota/gota/dataframe"

	"go-dominance/internal/model"
)

// ExtractObservations turns two resolved columns into normalized observations.
// Rows whose normalized observation is Missing are dropped and counted.
func ExtractObservations(df dataframe.DataFrame, groupCol, categoryCol string) ([]model.Observation, int) {
	groups := StringColumn(df, groupCol)
	categories := StringColumn(df, categoryCol)

	observations := make([]model.Observation, 0, len(groups))
	dropped := 0
	for i := range groups {
		obs := model.NewObservation(groups[i], categories[i])
		if obs.Missing() {
			dropped++
			continue
		}
		observations = append(observations, obs)
	}
	return observations, dropped
}
