package reftable

// Collection is a SciELO site.
type Collection struct {
	Acronym string
	Name    string
	Domain  string
}

var collections = map[string]Collection{
	"arg": {"arg", "Argentina", "www.scielo.org.ar"},
	"bol": {"bol", "Bolivia", "www.scielo.org.bo"},
	"chl": {"chl", "Chile", "www.scielo.cl"},
	"col": {"col", "Colombia", "www.scielo.org.co"},
	"cri": {"cri", "Costa Rica", "www.scielo.sa.cr"},
	"cub": {"cub", "Cuba", "scielo.sld.cu"},
	"ecu": {"ecu", "Ecuador", "scielo.senescyt.gob.ec"},
	"esp": {"esp", "España", "scielo.isciii.es"},
	"mex": {"mex", "México", "www.scielo.org.mx"},
	"per": {"per", "Perú", "www.scielo.org.pe"},
	"prt": {"prt", "Portugal", "www.scielo.mec.pt"},
	"pry": {"pry", "Paraguay", "scielo.iics.una.py"},
	"psi": {"psi", "PEPSIC", "pepsic.bvsalud.org"},
	"scl": {"scl", "Brasil", "www.scielo.br"},
	"spa": {"spa", "Saúde Pública", "www.scielosp.org"},
	"sss": {"sss", "Social Sciences", "socialsciences.scielo.org"},
	"sza": {"sza", "South Africa", "www.scielo.org.za"},
	"ury": {"ury", "Uruguay", "www.scielo.edu.uy"},
	"ven": {"ven", "Venezuela", "www.scielo.org.ve"},
}

var articleTypes = map[string]string{
	"ab": "abstract",
	"an": "announcement",
	"ax": "addendum",
	"co": "article-commentary",
	"cr": "case-report",
	"ct": "research-article",
	"ed": "editorial",
	"er": "correction",
	"in": "editorial",
	"le": "letter",
	"mt": "research-article",
	"nd": "undefined",
	"oa": "research-article",
	"pr": "press-release",
	"pv": "editorial",
	"rc": "book-review",
	"ra": "review-article",
	"rn": "rapid-communication",
	"sc": "rapid-communication",
	"tr": "research-article",
}

var periodicity = map[string]string{
	"A": "Annual",
	"B": "Bimonthly (every two months)",
	"C": "Semiweekly (twice a week)",
	"D": "Daily",
	"E": "Biweekly (every two weeks)",
	"F": "Semiannual (twice a year)",
	"G": "Biennial (every two years)",
	"H": "Triennial (every three years)",
	"I": "Three times a week",
	"J": "Three times a month",
	"K": "Irregular (known to be so)",
	"M": "Monthly",
	"Q": "Quarterly",
	"S": "Semimonthly (twice a month)",
	"T": "Three times a year",
	"W": "Weekly",
	"Z": "Other frequencies",
}

var journalStatus = map[string]string{
	"C": "current",
	"D": "deceased",
	"S": "suspended",
	"?": "inprogress",
}
