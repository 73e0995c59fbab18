package request_models

type TopPlacesQuery struct {
	Destination string `form:"destination" binding:"required"`
	Category    string `form:"category"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=20"`
}

type PlaceByNameQuery struct {
	Name        string `form:"name" binding:"required"`
	Destination string `form:"destination" binding:"required"`
}
