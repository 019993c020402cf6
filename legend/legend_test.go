package legend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultFormat(t *testing.T) {
	var cases = []struct {
		help   string
		input  Input
		result map[string]string
	}{
		{
			"regular issue, english",
			Input{
				JournalTitle:    "Revista de Saúde Pública",
				AbbrevTitle:     "Rev. Saúde Pública",
				PublicationDate: "2012-02",
				Volume:          "46",
				Number:          "1",
				StartPage:       "229",
				EndPage:         "232",
				Language:        "en",
			},
			map[string]string{
				Descriptive:              "Rev. Saúde Pública, 2012, vol. 46, no. 1, pp. 229-232",
				DescriptiveShort:         "Rev. Saúde Pública, 46(1):229-232, 2012",
				DescriptiveVeryShort:     "Rev. Saúde Pública, 2012, 46(1)",
				DescriptiveHTML:          "<em>Rev. Saúde Pública</em>, 2012, vol. 46, no. 1, pp. 229-232",
				DescriptiveShortHTML:     "<em>Rev. Saúde Pública</em>, 46(1):229-232, 2012",
				DescriptiveVeryShortHTML: "<em>Rev. Saúde Pública</em>, 2012, 46(1)",
			},
		},
		{
			"supplement with elocation, portuguese",
			Input{
				JournalTitle:    "Cadernos de Saúde Pública",
				PublicationDate: "2019",
				Volume:          "35",
				SupplementLabel: "2",
				ELocation:       "e00012319",
				Language:        "pt",
			},
			map[string]string{
				Descriptive:              "Cadernos de Saúde Pública, 2019, v. 35, supl. 2, p. e00012319",
				DescriptiveShort:         "Cadernos de Saúde Pública, 35(supl. 2):e00012319, 2019",
				DescriptiveVeryShort:     "Cadernos de Saúde Pública, 2019, 35",
				DescriptiveHTML:          "<em>Cadernos de Saúde Pública</em>, 2019, v. 35, supl. 2, p. e00012319",
				DescriptiveShortHTML:     "<em>Cadernos de Saúde Pública</em>, 35(supl. 2):e00012319, 2019",
				DescriptiveVeryShortHTML: "<em>Cadernos de Saúde Pública</em>, 2019, 35",
			},
		},
	}
	for _, c := range cases {
		t.Run(c.help, func(t *testing.T) {
			got := Default{}.Format(c.input)
			if diff := cmp.Diff(c.result, got); diff != "" {
				t.Errorf("Format (-want +got):\n%s", diff)
			}
		})
	}
}
