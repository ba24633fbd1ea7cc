package models

import "time"

// PropertySummary is the flat property representation returned by list and
// single-get endpoints; no joined owner or trace data.
type PropertySummary struct {
	ID      string   `json:"id"`
	IDOwner string   `json:"idOwner"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Price   float64  `json:"price"`
	Image   string   `json:"image"`
	Images  []string `json:"images"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
}

// PropertyDetail enriches a summary with the resolved owner and the sale
// history of the property. Owner is nil when the referenced display id
// matches no stored owner.
type PropertyDetail struct {
	ID           string          `json:"id"`
	IDProperty   string          `json:"idProperty"`
	IDOwner      string          `json:"idOwner"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Price        float64         `json:"price"`
	CodeInternal string          `json:"codeInternal"`
	Year         int             `json:"year"`
	Image        string          `json:"image"`
	Images       []string        `json:"images"`
	Lat          float64         `json:"lat"`
	Lng          float64         `json:"lng"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	Owner        *Owner          `json:"owner"`
	Traces       []PropertyTrace `json:"propertyTraces"`
}

// CreatePropertyInput is the POST /properties request body.
type CreatePropertyInput struct {
	IDOwner string   `json:"idOwner"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Price   float64  `json:"price"`
	Image   string   `json:"image"`
	Images  []string `json:"images"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
}

// CreateOwnerInput is the POST /owners request body. IDOwner is optional;
// when empty a display id is generated.
type CreateOwnerInput struct {
	IDOwner  string    `json:"idOwner"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Photo    string    `json:"photo"`
	Birthday time.Time `json:"birthday"`
}

// CreateTraceInput is the POST /propertytraces request body. IDProperty is
// the owning property's display id.
type CreateTraceInput struct {
	IDPropertyTrace string    `json:"idPropertyTrace"`
	DateSale        time.Time `json:"dateSale"`
	Name            string    `json:"name"`
	Value           float64   `json:"value"`
	Tax             float64   `json:"tax"`
	IDProperty      string    `json:"idProperty"`
}

// Summary flattens a property document into its list representation.
func (p *Property) Summary() PropertySummary {
	return PropertySummary{
		ID:      p.ID.Hex(),
		IDOwner: p.IDOwner,
		Name:    p.Name,
		Address: p.Address,
		Price:   p.Price,
		Image:   p.Image,
		Images:  p.GalleryURLs(),
		Lat:     p.Location.Lat,
		Lng:     p.Location.Lng,
	}
}

// Detail builds the enriched representation from the document plus the
// resolved owner and traces.
func (p *Property) Detail(owner *Owner, traces []PropertyTrace) PropertyDetail {
	if traces == nil {
		traces = []PropertyTrace{}
	}
	return PropertyDetail{
		ID:           p.ID.Hex(),
		IDProperty:   p.IDProperty,
		IDOwner:      p.IDOwner,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		Image:        p.Image,
		Images:       p.GalleryURLs(),
		Lat:          p.Location.Lat,
		Lng:          p.Location.Lng,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Owner:        owner,
		Traces:       traces,
	}
}
