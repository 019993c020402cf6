package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/reftable"
)

func TestRawAffiliations(t *testing.T) {
	r := isis.Record{
		"v70": {
			isis.NewOccurrence("i", "aff1", "_", "Universidade de S&atilde;o Paulo", "c", "São Paulo", "s", "SP", "p", "Brasil", "e", "a@usp.br"),
			isis.NewOccurrence("i", "AFF2", "_", "Fiocruz", "1", "ENSP", "p", "Neverland"),
			isis.NewOccurrence("i", "AFF3", "_", "Harvard"),
		},
	}
	want := []Affiliation{
		{Index: "AFF1", Institution: "Universidade de São Paulo", City: "São Paulo", State: "SP", Country: "Brasil", CountryISO3166: "BR", Email: "a@usp.br"},
		{Index: "AFF2", Institution: "Fiocruz", OrgDiv1: "ENSP", Country: "Neverland"},
		{Index: "AFF3", Institution: "Harvard"},
	}
	got := RawAffiliations(r, reftable.Default())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RawAffiliations (-want +got):\n%s", diff)
	}
}

func TestNormalizedAffiliations(t *testing.T) {
	r := isis.Record{
		"v240": {
			isis.NewOccurrence("i", "AFF1", "_", "Universidade de São Paulo", "p", "BR", "s", "SP"),
			isis.NewOccurrence("i", "AFF2", "_", "Unknown", "p", "XX"),
			isis.NewOccurrence("i", "aff3", "_", "Universidade de Sao Paulo", "s", "SP"),
		},
	}
	want := []Affiliation{
		{Index: "AFF1", Institution: "Universidade de São Paulo", State: "SP", Country: "Brazil", CountryISO3166: "BR", Normalized: true},
		{Index: "AFF2", Institution: "Unknown", Normalized: true},
		{Index: "AFF3", Institution: "Universidade de Sao Paulo", State: "SP", Normalized: true},
	}
	got := NormalizedAffiliations(r, reftable.Default())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizedAffiliations (-want +got):\n%s", diff)
	}
}

func TestMixAffiliations(t *testing.T) {
	raw := []Affiliation{
		{Index: "AFF1", Institution: "USP", City: "São Paulo", State: "São Paulo", Country: "Brasil", CountryISO3166: "BR", Email: "x@usp.br"},
		{Index: "AFF2", Institution: "Fiocruz", Country: "Brasil", CountryISO3166: "BR"},
	}
	curated := []Affiliation{
		{Index: "AFF9", Institution: "Dropped", Country: "Chile", CountryISO3166: "CL", Normalized: true},
		{Index: "AFF1", Institution: "Universidade de São Paulo", State: "SP", Country: "Brazil", CountryISO3166: "BR", Normalized: true},
	}
	want := []Affiliation{
		{Index: "AFF1", Institution: "Universidade de São Paulo", City: "São Paulo", State: "SP", Country: "Brazil", CountryISO3166: "BR", Email: "x@usp.br", Normalized: true},
		{Index: "AFF2", Institution: "Fiocruz", Country: "Brasil", CountryISO3166: "BR"},
	}
	got := MixAffiliations(raw, curated)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MixAffiliations (-want +got):\n%s", diff)
	}
	if raw[0].Institution != "USP" {
		t.Errorf("input must not be modified")
	}
}

func TestMixAffiliationsRepeatedIndex(t *testing.T) {
	raw := []Affiliation{
		{Index: "AFF1", Institution: "first"},
		{Index: "AFF2", Institution: "other"},
		{Index: "AFF1", Institution: "second"},
	}
	got := MixAffiliations(raw, nil)
	want := []Affiliation{
		{Index: "AFF1", Institution: "second"},
		{Index: "AFF2", Institution: "other"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MixAffiliations (-want +got):\n%s", diff)
	}
}

func TestMixAffiliationsUnknownCuratedCountry(t *testing.T) {
	r := isis.Record{
		"v70":  {isis.NewOccurrence("i", "AFF1", "_", "usp raw", "p", "Brasil")},
		"v240": {isis.NewOccurrence("i", "AFF1", "_", "Universidade de Sao Paulo", "s", "SP")},
	}
	tables := reftable.Default()
	got := MixAffiliations(RawAffiliations(r, tables), NormalizedAffiliations(r, tables))
	want := []Affiliation{
		{Index: "AFF1", Institution: "Universidade de Sao Paulo", State: "SP", Normalized: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MixAffiliations (-want +got):\n%s", diff)
	}
}

func TestAffiliationConflicts(t *testing.T) {
	raw := []Affiliation{
		{Index: "AFF1", Institution: "Universidade de São Paulo", State: "São Paulo", Country: "Brasil", CountryISO3166: "BR"},
		{Index: "AFF2", Institution: "Fiocruz", State: "RJ", Country: "Chile", CountryISO3166: "CL"},
		{Index: "AFF3", Institution: "Harvard", Country: "Neverland"},
	}
	curated := []Affiliation{
		{Index: "AFF1", Institution: "UNIVERSIDADE DE SAO PAULO", State: "SP", Country: "Brazil", CountryISO3166: "BR", Normalized: true},
		{Index: "AFF2", Institution: "Fundação Oswaldo Cruz", State: "SP", Country: "Brazil", CountryISO3166: "BR", Normalized: true},
		{Index: "AFF3", Institution: "harvard", Normalized: true},
		{Index: "AFF9", Institution: "Dropped", Normalized: true},
	}
	want := map[string][]string{
		"AFF2": {"institution", "state", "country"},
	}
	got := AffiliationConflicts(raw, curated, reftable.Default())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AffiliationConflicts (-want +got):\n%s", diff)
	}
	if got := AffiliationConflicts(raw[:1], curated[:1], reftable.Default()); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
