package domain

type StageState string

const (
	StageUpcoming  StageState = "upcoming"
	StageActive    StageState = "active"
	StageCompleted StageState = "completed"
)

type Stage struct {
	Status Status
	Label  string
	State  StageState
}

// ProgressStages renders the five fulfillment stages for one order status:
// stages before the current one are completed, the current one is active,
// later ones are upcoming. An absent or unknown status counts as pending.
func ProgressStages(status Status) []Stage {
	current := NormalizeStatus(status).Index()

	stages := make([]Stage, len(StatusOrder))
	for i, st := range StatusOrder {
		state := StageUpcoming
		switch {
		case i < current:
			state = StageCompleted
		case i == current:
			state = StageActive
		}
		stages[i] = Stage{Status: st, Label: st.Label(), State: state}
	}
	return stages
}
