package models

// DeliveryType is one of the fixed heat delivery categories from the ERÚ
// bulletin. Each bulletin row carries a (price, quantity) pair per type, in
// this declared order.
type DeliveryType struct {
	Name        string
	Description string
}

// DeliveryTypes lists the ten delivery types in bulletin column order.
// The order is load-bearing: the record reconstructor consumes price and
// quantity tokens positionally against this slice.
var DeliveryTypes = []DeliveryType{
	{
		Name:        "Dodávky z výroby při výkonu nad 10 MWt",
		Description: "Dodávky tepelné energie z výrobních zařízení s instalovaným výkonem nad 10 MWt",
	},
	{
		Name:        "Dodávky z výroby při výkonu do 10 MWt",
		Description: "Dodávky tepelné energie z výrobních zařízení s instalovaným výkonem do 10 MWt",
	},
	{
		Name:        "Dodávky z primárního rozvodu",
		Description: "Dodávky tepelné energie z primárního rozvodu",
	},
	{
		Name:        "Dodávky z rozvodů z blokové kotelny",
		Description: "Dodávky tepelné energie z rozvodů z blokové kotelny",
	},
	{
		Name:        "Dodávky ze sekundárních rozvodů",
		Description: "Dodávky tepelné energie ze sekundárních rozvodů",
	},
	{
		Name:        "Dodávky z domovní předávací stanice",
		Description: "Dodávky tepelné energie z domovní předávací stanice",
	},
	{
		Name:        "Dodávky z domovní kotelny",
		Description: "Dodávky tepelné energie z domovní kotelny",
	},
	{
		Name:        "Dodávky pro centrální přípravu teplé vody na zdroji",
		Description: "Dodávky tepelné energie pro centrální přípravu teplé vody na zdroji",
	},
	{
		Name:        "Dodávky z centrální výměníkové stanice (CVS)",
		Description: "Dodávky tepelné energie z centrální výměníkové stanice",
	},
	{
		Name:        "Dodávky pro centrální přípravu teplé vody na CVS",
		Description: "Dodávky tepelné energie pro centrální přípravu teplé vody na centrální výměníkové stanici",
	},
}
