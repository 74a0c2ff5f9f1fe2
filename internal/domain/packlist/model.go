package packlist

// Request captures the trip payload accepted by the packing list service.
type Request struct {
	City       string   `json:"city"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Activities []string `json:"activities"`
	Profile    string   `json:"profile"`
}

// Result is serialized back to API consumers.
type Result struct {
	City        string  `json:"city"`
	Days        int     `json:"days"`
	Profile     string  `json:"profile"`
	Weather     Weather `json:"weather"`
	Items       []Item  `json:"items"`
	Uncertainty string  `json:"uncertainty"`
}

// Weather is the resolved classification attached to a result. The numeric
// fields stay nil when the forecast collaborator was unreachable.
type Weather struct {
	Bucket   Bucket   `json:"bucket"`
	AvgTMax  *float64 `json:"avg_tmax"`
	RainProb *float64 `json:"rain_prob"`
}

// Item is a single line of the packing list.
type Item struct {
	Name     string `json:"name"`
	Qty      int    `json:"qty"`
	Critical bool   `json:"critical,omitempty"`
}

// Forecast models the collaborator response consumed by the orchestrator.
type Forecast struct {
	Summary     string
	AvgTMax     *float64
	RainProb    *float64
	Uncertainty string
}

// Quantities holds the scaled counts for the base clothing categories.
type Quantities struct {
	TShirts   int
	Underwear int
	Socks     int
	Jacket    int
}
