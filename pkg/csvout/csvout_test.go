package csvout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jstrnad/ceny-tepla/models"
)

func sampleRows() []models.Row {
	capacity := 120.5
	meterPoints := 3400
	subscribers := 15000
	return []models.Row{
		{
			Year: 2022, Locality: "Teplárna Brno", RegionCode: "B",
			CoalPct: 10.5, BiomassPct: 5.2, GasPct: 80.1, OtherPct: 4.2,
			Capacity: &capacity, MeterPoints: &meterPoints, Subscribers: &subscribers,
			DeliveryType: models.DeliveryTypes[0].Name, Price: 250.5, Quantity: 12000,
		},
		{
			Year: 2023, Locality: "Výtopna Kladno", RegionCode: "S",
			GasPct:       100.0,
			DeliveryType: models.DeliveryTypes[2].Name, Price: 310.0, Quantity: 850.5,
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", YearFileName(2022))

	rows := sampleRows()
	if err := WriteFile(path, rows); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(rows))
	}

	for i := range rows {
		want, g := rows[i], got[i]
		if g.Year != want.Year || g.Locality != want.Locality || g.RegionCode != want.RegionCode {
			t.Errorf("row %d identity = %d/%q/%q, want %d/%q/%q",
				i, g.Year, g.Locality, g.RegionCode, want.Year, want.Locality, want.RegionCode)
		}
		if g.Price != want.Price || g.Quantity != want.Quantity {
			t.Errorf("row %d price/qty = %v/%v, want %v/%v", i, g.Price, g.Quantity, want.Price, want.Quantity)
		}
		if g.CoalPct != want.CoalPct || g.GasPct != want.GasPct {
			t.Errorf("row %d fuels = %v/%v, want %v/%v", i, g.CoalPct, g.GasPct, want.CoalPct, want.GasPct)
		}
		if g.DeliveryType != want.DeliveryType {
			t.Errorf("row %d type = %q, want %q", i, g.DeliveryType, want.DeliveryType)
		}
	}

	// Absent capacity/count fields survive as absent, not as zero.
	if got[1].Capacity != nil || got[1].MeterPoints != nil || got[1].Subscribers != nil {
		t.Errorf("row 1 capacity group = %v/%v/%v, want all nil",
			got[1].Capacity, got[1].MeterPoints, got[1].Subscribers)
	}
	if got[0].Capacity == nil || *got[0].Capacity != 120.5 {
		t.Errorf("row 0 Capacity = %v, want 120.5", got[0].Capacity)
	}
}

func TestWriteFile_Header(t *testing.T) {
	path := filepath.Join(t.TempDir(), YearFileName(2022))
	if err := WriteFile(path, sampleRows()); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	header := strings.SplitN(string(data), "\n", 2)[0]
	want := "Rok,Lokalita,Kod_kraje,Uhli_procento,Biomasa_procento,Odpad_procento," +
		"Zemni_plyn_procento,Jina_paliva_procento,Instalovany_vykon," +
		"Pocet_odbernych_mist,Pocet_odberatelu,Typ_dodavky,Cena,Mnozstvi"
	if strings.TrimRight(header, "\r") != want {
		t.Errorf("header = %q, want %q", header, want)
	}
}

func TestYearFileName(t *testing.T) {
	if got := YearFileName(2022); got != "ceny_tepla_2022.csv" {
		t.Errorf("YearFileName(2022) = %q", got)
	}
}
