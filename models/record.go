package models

// FuelShares holds the five fuel percentages in bulletin column order.
// A share is 0.0 when the bulletin reports none or when the whole group
// failed to parse.
type FuelShares struct {
	Coal    float64
	Biomass float64
	Waste   float64
	Gas     float64
	Other   float64
}

// Delivery is one delivery type's parsed price/quantity pair.
type Delivery struct {
	Type     string
	Price    float64
	Quantity float64
}

// SourceRecord is the reconstructed per-locality record for one bulletin
// line, before fan-out into per-delivery-type rows.
//
// Capacity, MeterPoints and Subscribers are nil when their token group was
// absent or unparseable. Deliveries holds only the types whose price and
// quantity both parsed, at most one entry per DeliveryTypes element.
type SourceRecord struct {
	Locality    string
	RegionCode  string
	Fuels       FuelShares
	Capacity    *float64
	MeterPoints *int
	Subscribers *int
	Deliveries  []Delivery
}

// Row is one flattened output record. The csv tags fix the Czech header
// names shared with the downstream import and dashboard layers.
type Row struct {
	Year         int      `csv:"Rok" json:"rok"`
	Locality     string   `csv:"Lokalita" json:"lokalita"`
	RegionCode   string   `csv:"Kod_kraje" json:"kod_kraje"`
	CoalPct      float64  `csv:"Uhli_procento" json:"uhli_procento"`
	BiomassPct   float64  `csv:"Biomasa_procento" json:"biomasa_procento"`
	WastePct     float64  `csv:"Odpad_procento" json:"odpad_procento"`
	GasPct       float64  `csv:"Zemni_plyn_procento" json:"zemni_plyn_procento"`
	OtherPct     float64  `csv:"Jina_paliva_procento" json:"jina_paliva_procento"`
	Capacity     *float64 `csv:"Instalovany_vykon" json:"instalovany_vykon"`
	MeterPoints  *int     `csv:"Pocet_odbernych_mist" json:"pocet_odbernych_mist"`
	Subscribers  *int     `csv:"Pocet_odberatelu" json:"pocet_odberatelu"`
	DeliveryType string   `csv:"Typ_dodavky" json:"typ_dodavky"`
	Price        float64  `csv:"Cena" json:"cena"`
	Quantity     float64  `csv:"Mnozstvi" json:"mnozstvi"`
}

// Rows expands a SourceRecord into one Row per parsed delivery, tagged with
// the source year. A record with no parsed deliveries yields no rows.
func (r *SourceRecord) Rows(year int) []Row {
	rows := make([]Row, 0, len(r.Deliveries))
	for _, d := range r.Deliveries {
		rows = append(rows, Row{
			Year:         year,
			Locality:     r.Locality,
			RegionCode:   r.RegionCode,
			CoalPct:      r.Fuels.Coal,
			BiomassPct:   r.Fuels.Biomass,
			WastePct:     r.Fuels.Waste,
			GasPct:       r.Fuels.Gas,
			OtherPct:     r.Fuels.Other,
			Capacity:     r.Capacity,
			MeterPoints:  r.MeterPoints,
			Subscribers:  r.Subscribers,
			DeliveryType: d.Type,
			Price:        d.Price,
			Quantity:     d.Quantity,
		})
	}
	return rows
}
