package request_models

type Budget string

const (
	BudgetEconomy  Budget = "Economy"
	BudgetModerate Budget = "Moderate"
	BudgetComfort  Budget = "Comfort"
	BudgetLuxury   Budget = "Luxury"
)

var Budgets = []Budget{BudgetEconomy, BudgetModerate, BudgetComfort, BudgetLuxury}

type TravelerType string

const (
	TravelerSolo    TravelerType = "Solo"
	TravelerCouple  TravelerType = "Couple"
	TravelerFamily  TravelerType = "Family"
	TravelerFriends TravelerType = "Friends"
)

var TravelerTypes = []TravelerType{TravelerSolo, TravelerCouple, TravelerFamily, TravelerFriends}

// TripRequest is the input of one itinerary generation. JSON names follow the
// saved trips file (from, pax) so a request can be echoed into a record as-is.
type TripRequest struct {
	Origin       string       `json:"from"`
	Destination  string       `json:"destination" binding:"required"`
	Days         int          `json:"days" binding:"required,min=1,max=30"`
	Budget       Budget       `json:"budget" binding:"required,oneof=Economy Moderate Comfort Luxury"`
	TravelerType TravelerType `json:"pax" binding:"required,oneof=Solo Couple Family Friends"`
	Interests    []string     `json:"interests"`
}
